//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ImageIO -framework Foundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <ImageIO/ImageIO.h>
#include <stdlib.h>
#include <string.h>

static int cg_check_screen_recording() {
    return CGPreflightScreenCaptureAccess() ? 1 : 0;
}

typedef struct {
    unsigned char *data;
    int            length;
} ScreenshotResult;

// encode_png writes the image as PNG into a malloc'd buffer.
static int encode_png(CGImageRef image, ScreenshotResult *out) {
    CFMutableDataRef data = CFDataCreateMutable(kCFAllocatorDefault, 0);
    CGImageDestinationRef dest = CGImageDestinationCreateWithData(data, CFSTR("public.png"), 1, NULL);
    if (!dest) {
        CFRelease(data);
        return -1;
    }
    CGImageDestinationAddImage(dest, image, NULL);
    int ok = CGImageDestinationFinalize(dest) ? 0 : -1;
    CFRelease(dest);
    if (ok != 0) {
        CFRelease(data);
        return -1;
    }
    CFIndex len = CFDataGetLength(data);
    out->data = malloc(len);
    memcpy(out->data, CFDataGetBytePtr(data), len);
    out->length = (int)len;
    CFRelease(data);
    return 0;
}

static int cg_capture_window(int windowID, ScreenshotResult *out) {
    CGImageRef image = CGWindowListCreateImage(
        CGRectNull,
        kCGWindowListOptionIncludingWindow,
        (CGWindowID)windowID,
        kCGWindowImageBoundsIgnoreFraming);
    if (!image) return -1;
    int rc = encode_png(image, out);
    CGImageRelease(image);
    return rc;
}

static int cg_capture_screen(ScreenshotResult *out) {
    CGImageRef image = CGWindowListCreateImage(
        CGRectInfinite,
        kCGWindowListOptionOnScreenOnly,
        kCGNullWindowID,
        kCGWindowImageDefault);
    if (!image) return -1;
    int rc = encode_png(image, out);
    CGImageRelease(image);
    return rc;
}

static void cg_free_screenshot(ScreenshotResult *r) {
    if (r->data) free(r->data);
    r->data = NULL;
    r->length = 0;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/Wirasm/axcli/internal/platform"
)

// Screenshotter implements platform.Screenshotter for macOS. It returns
// full-resolution PNG bytes; scaling and format conversion happen in Go.
type Screenshotter struct{}

// NewScreenshotter creates a new macOS screenshotter.
func NewScreenshotter() *Screenshotter {
	return &Screenshotter{}
}

// Capture grabs a window (by ID) or the full screen as PNG bytes.
func (s *Screenshotter) Capture(opts platform.ScreenshotOptions) ([]byte, error) {
	if C.cg_check_screen_recording() == 0 {
		return nil, fmt.Errorf(
			"screen recording permission required\n\n" +
				"Grant permission at: System Settings > Privacy & Security > Screen Recording\n" +
				"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
				"Then restart the terminal and try again.")
	}

	var result C.ScreenshotResult
	var rc C.int
	if opts.WindowID != 0 {
		rc = C.cg_capture_window(C.int(opts.WindowID), &result)
	} else {
		rc = C.cg_capture_screen(&result)
	}
	if rc != 0 {
		return nil, fmt.Errorf("screenshot capture failed")
	}
	defer C.cg_free_screenshot(&result)

	return C.GoBytes(unsafe.Pointer(result.data), C.int(result.length)), nil
}
