package event

// Standard hook names.
const (
	HookBefore    = "before"
	HookCallbacks = "callbacks"
	HookAfter     = "after"
	HookEnable    = "enable"
	HookDisable   = "disable"
)

// StandardHooks returns the standard hook names in lifecycle order.
func StandardHooks() []string {
	return []string{HookBefore, HookCallbacks, HookAfter, HookEnable, HookDisable}
}

// IsStandardHook returns true if hook is one of the standard hook names.
func IsStandardHook(hook string) bool {
	switch hook {
	case HookBefore, HookCallbacks, HookAfter, HookEnable, HookDisable:
		return true
	default:
		return false
	}
}
