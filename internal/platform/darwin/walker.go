//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework CoreGraphics -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>
#include <string.h>

// AX_MESSAGING_TIMEOUT bounds every attribute read so an unresponsive
// target process fails the read instead of hanging the caller.
#define AX_MESSAGING_TIMEOUT 1.0

static AXUIElementRef ax_app_element(pid_t pid) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (app) AXUIElementSetMessagingTimeout(app, AX_MESSAGING_TIMEOUT);
    return app;
}

// ax_copy_refs copies an array-valued attribute into a malloc'd array of
// retained element refs, each with the messaging timeout applied. The caller
// owns both the array (free) and every ref (CFRelease).
static int ax_copy_refs(AXUIElementRef el, CFStringRef attr, AXUIElementRef **out, int *outCount) {
    CFArrayRef arr = NULL;
    if (AXUIElementCopyAttributeValue(el, attr, (CFTypeRef *)&arr) != kAXErrorSuccess || !arr) {
        return -1;
    }
    CFIndex count = CFArrayGetCount(arr);
    AXUIElementRef *refs = calloc(count > 0 ? count : 1, sizeof(AXUIElementRef));
    for (CFIndex i = 0; i < count; i++) {
        AXUIElementRef child = (AXUIElementRef)CFArrayGetValueAtIndex(arr, i);
        CFRetain(child);
        AXUIElementSetMessagingTimeout(child, AX_MESSAGING_TIMEOUT);
        refs[i] = child;
    }
    CFRelease(arr);
    *out = refs;
    *outCount = (int)count;
    return 0;
}

static int ax_copy_windows(AXUIElementRef app, AXUIElementRef **out, int *outCount) {
    return ax_copy_refs(app, kAXWindowsAttribute, out, outCount);
}

static int ax_copy_children(AXUIElementRef el, AXUIElementRef **out, int *outCount) {
    return ax_copy_refs(el, kAXChildrenAttribute, out, outCount);
}

// ax_copy_string reads a string-convertible attribute. Non-string values
// (numbers, booleans) are formatted; anything else degrades to "".
static char *ax_copy_string(AXUIElementRef el, const char *attrName) {
    CFStringRef attr = CFStringCreateWithCString(kCFAllocatorDefault, attrName, kCFStringEncodingUTF8);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue(el, attr, &value);
    CFRelease(attr);
    if (err != kAXErrorSuccess || !value) return strdup("");

    char buf[1024] = {0};
    CFTypeID tid = CFGetTypeID(value);
    if (tid == CFStringGetTypeID()) {
        CFStringGetCString((CFStringRef)value, buf, sizeof(buf), kCFStringEncodingUTF8);
    } else if (tid == CFNumberGetTypeID()) {
        double d = 0;
        CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, &d);
        if (d == (long long)d) {
            snprintf(buf, sizeof(buf), "%lld", (long long)d);
        } else {
            snprintf(buf, sizeof(buf), "%g", d);
        }
    } else if (tid == CFBooleanGetTypeID()) {
        snprintf(buf, sizeof(buf), "%s", CFBooleanGetValue((CFBooleanRef)value) ? "true" : "false");
    }
    CFRelease(value);
    return strdup(buf);
}

static int ax_copy_frame(AXUIElementRef el, int *x, int *y, int *w, int *h) {
    AXValueRef posVal = NULL, sizeVal = NULL;
    CGPoint pos;
    CGSize size;

    if (AXUIElementCopyAttributeValue(el, kAXPositionAttribute, (CFTypeRef *)&posVal) != kAXErrorSuccess || !posVal) {
        return -1;
    }
    if (!AXValueGetValue(posVal, kAXValueTypeCGPoint, &pos)) {
        CFRelease(posVal);
        return -1;
    }
    CFRelease(posVal);

    if (AXUIElementCopyAttributeValue(el, kAXSizeAttribute, (CFTypeRef *)&sizeVal) != kAXErrorSuccess || !sizeVal) {
        return -1;
    }
    if (!AXValueGetValue(sizeVal, kAXValueTypeCGSize, &size)) {
        CFRelease(sizeVal);
        return -1;
    }
    CFRelease(sizeVal);

    *x = (int)pos.x;
    *y = (int)pos.y;
    *w = (int)size.width;
    *h = (int)size.height;
    return 0;
}

// ax_enabled returns 1/0 for the enabled attribute, -1 when it is absent.
static int ax_enabled(AXUIElementRef el) {
    CFTypeRef value = NULL;
    if (AXUIElementCopyAttributeValue(el, kAXEnabledAttribute, &value) != kAXErrorSuccess || !value) {
        return -1;
    }
    int enabled = -1;
    if (CFGetTypeID(value) == CFBooleanGetTypeID()) {
        enabled = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
    }
    CFRelease(value);
    return enabled;
}

static void ax_release(AXUIElementRef el) {
    if (el) CFRelease(el);
}
*/
import "C"

import (
	"unsafe"

	"github.com/Wirasm/axcli/internal/model"
	"github.com/Wirasm/axcli/internal/platform"
)

// TreeWalker implements platform.TreeWalker for macOS.
type TreeWalker struct{}

// NewTreeWalker creates a new macOS accessibility tree walker.
func NewTreeWalker() *TreeWalker {
	return &TreeWalker{}
}

// Enumerate walks the accessibility graph of the process and returns a flat
// list of element records. Failure to obtain the process's root object or
// its window collection is fatal; any single attribute read failing inside
// the walk degrades to an absent value instead.
func (t *TreeWalker) Enumerate(pid int) ([]model.Element, error) {
	app := C.ax_app_element(C.pid_t(pid))
	if app == nil {
		return nil, &platform.QueryError{PID: pid, Reason: "no accessibility element for process"}
	}
	defer C.ax_release(app)

	var cRefs *C.AXUIElementRef
	var cCount C.int
	if C.ax_copy_windows(app, &cRefs, &cCount) != 0 {
		return nil, &platform.QueryError{PID: pid, Reason: "window collection unavailable"}
	}
	defer C.free(unsafe.Pointer(cRefs))

	roots := make([]axNode, 0, int(cCount))
	if cCount > 0 {
		for _, ref := range unsafe.Slice(cRefs, int(cCount)) {
			roots = append(roots, ref)
		}
	}

	return walkTree(cgoAX{}, roots), nil
}

// cgoAX implements axAPI over the live AX C bindings.
type cgoAX struct{}

func (cgoAX) Attributes(node axNode) axAttributes {
	el := node.(C.AXUIElementRef)

	attrs := axAttributes{
		Role:        copyString(el, "AXRole"),
		Title:       copyString(el, "AXTitle"),
		Value:       copyString(el, "AXValue"),
		Description: copyString(el, "AXDescription"),
	}

	var x, y, w, h C.int
	if C.ax_copy_frame(el, &x, &y, &w, &h) == 0 {
		attrs.Bounds = &[4]int{int(x), int(y), int(w), int(h)}
	}

	if e := C.ax_enabled(el); e == 0 {
		f := false
		attrs.Enabled = &f
	}

	return attrs
}

func (cgoAX) Children(node axNode) []axNode {
	el := node.(C.AXUIElementRef)

	var cRefs *C.AXUIElementRef
	var cCount C.int
	if C.ax_copy_children(el, &cRefs, &cCount) != 0 || cCount == 0 {
		return nil
	}
	defer C.free(unsafe.Pointer(cRefs))

	children := make([]axNode, 0, int(cCount))
	for _, ref := range unsafe.Slice(cRefs, int(cCount)) {
		children = append(children, ref)
	}
	return children
}

func (cgoAX) Release(node axNode) {
	C.ax_release(node.(C.AXUIElementRef))
}

func copyString(el C.AXUIElementRef, attr string) string {
	cAttr := C.CString(attr)
	defer C.free(unsafe.Pointer(cAttr))
	cStr := C.ax_copy_string(el, cAttr)
	defer C.free(unsafe.Pointer(cStr))
	return C.GoString(cStr)
}
