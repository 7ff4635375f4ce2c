//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>

static int ax_is_trusted() {
    return AXIsProcessTrusted();
}

static int ax_prompt_trusted() {
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { kCFBooleanTrue };
    CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault,
        keys, values, 1,
        &kCFTypeDictionaryKeyCallBacks,
        &kCFTypeDictionaryValueCallBacks);
    Boolean trusted = AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
    return trusted ? 1 : 0;
}
*/
import "C"

import "github.com/Wirasm/axcli/internal/platform"

// PermissionGate implements platform.PermissionGate for macOS. The trust
// state is queried on every Check call: consent is external, user-revocable
// state owned by the OS, never cached here.
type PermissionGate struct{}

// NewPermissionGate creates a new macOS permission gate.
func NewPermissionGate() *PermissionGate {
	return &PermissionGate{}
}

// Check returns ErrPermissionDenied if the process lacks accessibility
// permission.
func (g *PermissionGate) Check() error {
	if C.ax_is_trusted() == 0 {
		return platform.ErrPermissionDenied
	}
	return nil
}

// PromptAccessibilityPermission asks macOS to show the consent dialog if
// permission has not been granted yet. No-op when already trusted.
func PromptAccessibilityPermission() {
	C.ax_prompt_trusted()
}
