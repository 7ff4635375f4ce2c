//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices -framework AppKit -framework Foundation
#import <CoreGraphics/CoreGraphics.h>
#import <CoreFoundation/CoreFoundation.h>
#import <ApplicationServices/ApplicationServices.h>
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    pid_t pid;
    int   windowID;
    int   layer;
    int   x, y, width, height;
    int   onscreen;
    char *title;
    char *appName;
} CGWindowInfo;

static char *copy_cfstring(CFStringRef s) {
    if (!s) return strdup("");
    char buf[1024] = {0};
    if (!CFStringGetCString(s, buf, sizeof(buf), kCFStringEncodingUTF8)) {
        return strdup("");
    }
    return strdup(buf);
}

static int dict_int(CFDictionaryRef d, CFStringRef key) {
    CFNumberRef n = (CFNumberRef)CFDictionaryGetValue(d, key);
    int v = 0;
    if (n) CFNumberGetValue(n, kCFNumberIntType, &v);
    return v;
}

// cg_list_windows snapshots the window server's window list, including
// minimized windows (kCGWindowListOptionAll). The caller frees the result
// with cg_free_windows.
static int cg_list_windows(CGWindowInfo **out, int *outCount) {
    CFArrayRef list = CGWindowListCopyWindowInfo(
        kCGWindowListOptionAll | kCGWindowListExcludeDesktopElements,
        kCGNullWindowID);
    if (!list) return -1;

    CFIndex count = CFArrayGetCount(list);
    CGWindowInfo *infos = calloc(count > 0 ? count : 1, sizeof(CGWindowInfo));
    int n = 0;

    for (CFIndex i = 0; i < count; i++) {
        CFDictionaryRef win = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);
        CGWindowInfo *w = &infos[n];

        w->pid = (pid_t)dict_int(win, kCGWindowOwnerPID);
        w->windowID = dict_int(win, kCGWindowNumber);
        w->layer = dict_int(win, kCGWindowLayer);

        CFBooleanRef on = (CFBooleanRef)CFDictionaryGetValue(win, kCGWindowIsOnscreen);
        w->onscreen = (on && CFBooleanGetValue(on)) ? 1 : 0;

        CFDictionaryRef boundsDict = (CFDictionaryRef)CFDictionaryGetValue(win, kCGWindowBounds);
        if (boundsDict) {
            CGRect rect;
            if (CGRectMakeWithDictionaryRepresentation(boundsDict, &rect)) {
                w->x = (int)rect.origin.x;
                w->y = (int)rect.origin.y;
                w->width = (int)rect.size.width;
                w->height = (int)rect.size.height;
            }
        }

        w->title = copy_cfstring((CFStringRef)CFDictionaryGetValue(win, kCGWindowName));
        w->appName = copy_cfstring((CFStringRef)CFDictionaryGetValue(win, kCGWindowOwnerName));
        n++;
    }

    CFRelease(list);
    *out = infos;
    *outCount = n;
    return 0;
}

static void cg_free_windows(CGWindowInfo *w, int count) {
    if (!w) return;
    for (int i = 0; i < count; i++) {
        free(w[i].title);
        free(w[i].appName);
    }
    free(w);
}

static pid_t ns_frontmost_pid() {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    return app ? [app processIdentifier] : 0;
}

static int ns_frontmost_app(char **name, pid_t *pid) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    if (!app) return -1;
    const char *n = [[app localizedName] UTF8String];
    *name = strdup(n ? n : "");
    *pid = [app processIdentifier];
    return 0;
}

// ns_activate_app brings the application to the foreground.
// NSApplicationActivateIgnoringOtherApps is deprecated and ineffective on
// macOS 14+, so activate all windows instead.
static int ns_activate_app(pid_t pid) {
    NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
    if (!app) return -1;
    [app activateWithOptions:NSApplicationActivateAllWindows];
    return 0;
}

typedef struct {
    char *title;
    int   x, y, width, height;
} AXWindowTitle;

// ax_list_window_titles reads title and frame for each AX window of the
// process. Frames let the Go side pair AX windows with window-server entries
// whose CG title is empty.
static int ax_list_window_titles(pid_t pid, AXWindowTitle **out, int *outCount) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (!app) return -1;
    AXUIElementSetMessagingTimeout(app, 1.0);

    CFArrayRef windows = NULL;
    AXError err = AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows);
    if (err != kAXErrorSuccess || !windows) {
        CFRelease(app);
        return -1;
    }

    CFIndex count = CFArrayGetCount(windows);
    AXWindowTitle *titles = calloc(count > 0 ? count : 1, sizeof(AXWindowTitle));
    int n = 0;

    for (CFIndex i = 0; i < count; i++) {
        AXUIElementRef win = (AXUIElementRef)CFArrayGetValueAtIndex(windows, i);
        AXWindowTitle *t = &titles[n];

        CFStringRef title = NULL;
        if (AXUIElementCopyAttributeValue(win, kAXTitleAttribute, (CFTypeRef *)&title) == kAXErrorSuccess && title) {
            t->title = copy_cfstring(title);
            CFRelease(title);
        } else {
            t->title = strdup("");
        }

        AXValueRef posVal = NULL, sizeVal = NULL;
        CGPoint pos = CGPointZero;
        CGSize size = CGSizeZero;
        if (AXUIElementCopyAttributeValue(win, kAXPositionAttribute, (CFTypeRef *)&posVal) == kAXErrorSuccess && posVal) {
            AXValueGetValue(posVal, kAXValueTypeCGPoint, &pos);
            CFRelease(posVal);
        }
        if (AXUIElementCopyAttributeValue(win, kAXSizeAttribute, (CFTypeRef *)&sizeVal) == kAXErrorSuccess && sizeVal) {
            AXValueGetValue(sizeVal, kAXValueTypeCGSize, &size);
            CFRelease(sizeVal);
        }
        t->x = (int)pos.x;
        t->y = (int)pos.y;
        t->width = (int)size.width;
        t->height = (int)size.height;
        n++;
    }

    CFRelease(windows);
    CFRelease(app);
    *out = titles;
    *outCount = n;
    return 0;
}

static void ax_free_window_titles(AXWindowTitle *t, int count) {
    if (!t) return;
    for (int i = 0; i < count; i++) free(t[i].title);
    free(t);
}

// ax_raise_window raises the first AX window whose title contains the given
// text (case-insensitive). A NULL title raises the first window.
static int ax_raise_window(pid_t pid, const char *title) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (!app) return -1;
    AXUIElementSetMessagingTimeout(app, 1.0);

    CFArrayRef windows = NULL;
    if (AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows) != kAXErrorSuccess || !windows) {
        CFRelease(app);
        return -1;
    }

    CFStringRef want = NULL;
    if (title) {
        want = CFStringCreateWithCString(kCFAllocatorDefault, title, kCFStringEncodingUTF8);
    }

    int rc = -1;
    CFIndex count = CFArrayGetCount(windows);
    for (CFIndex i = 0; i < count; i++) {
        AXUIElementRef win = (AXUIElementRef)CFArrayGetValueAtIndex(windows, i);

        if (want) {
            CFStringRef t = NULL;
            if (AXUIElementCopyAttributeValue(win, kAXTitleAttribute, (CFTypeRef *)&t) != kAXErrorSuccess || !t) {
                continue;
            }
            CFRange found = CFStringFind(t, want, kCFCompareCaseInsensitive);
            CFRelease(t);
            if (found.location == kCFNotFound) continue;
        }

        AXUIElementPerformAction(win, kAXRaiseAction);
        AXUIElementSetAttributeValue(win, kAXMainAttribute, kCFBooleanTrue);
        rc = 0;
        break;
    }

    if (want) CFRelease(want);
    CFRelease(windows);
    CFRelease(app);
    return rc;
}
*/
import "C"

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/Wirasm/axcli/internal/model"
	"github.com/Wirasm/axcli/internal/platform"
)

// WindowResolver implements platform.WindowResolver for macOS.
type WindowResolver struct{}

// NewWindowResolver creates a new macOS window resolver.
func NewWindowResolver() *WindowResolver {
	return &WindowResolver{}
}

// List returns a fresh snapshot of all application windows (layer 0),
// including minimized ones. Filters by app name and PID per ListOptions.
func (r *WindowResolver) List(opts platform.ListOptions) ([]model.Window, error) {
	var cWindows *C.CGWindowInfo
	var cCount C.int

	if C.cg_list_windows(&cWindows, &cCount) != 0 {
		return nil, &platform.WindowLookupError{Reason: "window server returned no window list"}
	}
	defer C.cg_free_windows(cWindows, cCount)

	count := int(cCount)
	if count == 0 {
		return []model.Window{}, nil
	}

	frontPid := int(C.ns_frontmost_pid())
	cSlice := unsafe.Slice(cWindows, count)

	// The frontmost app's first window is the focused one.
	frontmostFocusAssigned := false

	var windows []model.Window
	for i := 0; i < count; i++ {
		cw := cSlice[i]

		// Layer 0 only: real application windows.
		if int(cw.layer) != 0 {
			continue
		}

		pid := int(cw.pid)
		appName := C.GoString(cw.appName)
		if appName == "" && pid != 0 {
			appName = processName(pid)
		}

		if opts.PID != 0 && pid != opts.PID {
			continue
		}
		if opts.App != "" && !strings.EqualFold(appName, opts.App) {
			continue
		}

		focused := false
		if pid == frontPid && !frontmostFocusAssigned {
			focused = true
			frontmostFocusAssigned = true
		}

		windows = append(windows, model.Window{
			App:       appName,
			PID:       pid,
			Title:     C.GoString(cw.title),
			ID:        int(cw.windowID),
			Bounds:    [4]int{int(cw.x), int(cw.y), int(cw.width), int(cw.height)},
			Focused:   focused,
			Minimized: cw.onscreen == 0,
		})
	}

	if windows == nil {
		windows = []model.Window{}
	}

	r.enrichTitles(windows)

	// Sort: focused first, then by app name.
	sort.Slice(windows, func(i, j int) bool {
		if windows[i].Focused != windows[j].Focused {
			return windows[i].Focused
		}
		return strings.ToLower(windows[i].App) < strings.ToLower(windows[j].App)
	})

	return windows, nil
}

// enrichTitles fills empty window-server titles from the Accessibility API.
// CG and AX windows carry no shared identifier, so entries are paired by
// frame; each PID is queried at most once.
func (r *WindowResolver) enrichTitles(windows []model.Window) {
	pidsNeedingTitles := make(map[int]bool)
	for _, w := range windows {
		if w.Title == "" && w.PID != 0 {
			pidsNeedingTitles[w.PID] = true
		}
	}
	if len(pidsNeedingTitles) == 0 {
		return
	}

	type frame struct{ x, y, w, h int }
	axTitles := make(map[int]map[frame]string)
	for pid := range pidsNeedingTitles {
		var cTitles *C.AXWindowTitle
		var cCount C.int
		if C.ax_list_window_titles(C.pid_t(pid), &cTitles, &cCount) != 0 || cCount == 0 {
			continue
		}
		byFrame := make(map[frame]string)
		cSlice := unsafe.Slice(cTitles, int(cCount))
		for j := 0; j < int(cCount); j++ {
			t := C.GoString(cSlice[j].title)
			if t != "" {
				byFrame[frame{
					x: int(cSlice[j].x), y: int(cSlice[j].y),
					w: int(cSlice[j].width), h: int(cSlice[j].height),
				}] = t
			}
		}
		C.ax_free_window_titles(cTitles, cCount)
		axTitles[pid] = byFrame
	}

	for i := range windows {
		if windows[i].Title != "" {
			continue
		}
		if byFrame, ok := axTitles[windows[i].PID]; ok {
			b := windows[i].Bounds
			if t, ok := byFrame[frame{x: b[0], y: b[1], w: b[2], h: b[3]}]; ok {
				windows[i].Title = t
			}
		}
	}
}

// Focus activates the window's owning application and raises the window
// itself when it has a title to match on.
func (r *WindowResolver) Focus(w *model.Window) error {
	if C.ns_activate_app(C.pid_t(w.PID)) != 0 {
		return &platform.FocusError{App: w.App, PID: w.PID, Reason: "application is not running"}
	}

	var cTitle *C.char
	if w.Title != "" {
		cTitle = C.CString(w.Title)
		defer C.free(unsafe.Pointer(cTitle))
	}
	if C.ax_raise_window(C.pid_t(w.PID), cTitle) != 0 {
		return &platform.FocusError{App: w.App, PID: w.PID, Reason: "accessibility raise failed"}
	}
	return nil
}

// Frontmost returns the name and PID of the frontmost application.
func (r *WindowResolver) Frontmost() (string, int, error) {
	var cName *C.char
	var cPid C.pid_t

	if C.ns_frontmost_app(&cName, &cPid) != 0 {
		return "", 0, &platform.WindowLookupError{Reason: "no frontmost application"}
	}
	defer C.free(unsafe.Pointer(cName))

	return C.GoString(cName), int(cPid), nil
}

// processName resolves an executable name for windows whose owner name the
// window server omits (some agent apps).
func processName(pid int) string {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := p.Name()
	if err != nil {
		return ""
	}
	return name
}
