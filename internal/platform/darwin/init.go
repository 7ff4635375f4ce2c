//go:build darwin && cgo

package darwin

import "github.com/Wirasm/axcli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		gate := NewPermissionGate()
		windows := NewWindowResolver()
		return &platform.Provider{
			Permissions:   gate,
			Windows:       windows,
			Walker:        NewTreeWalker(),
			Inputter:      NewInputter(),
			Screenshotter: NewScreenshotter(),
		}, nil
	}
	platform.RequestPermissionsFunc = PromptAccessibilityPermission
}
