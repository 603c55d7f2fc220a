package animator

// ControllerBuilderOption is a functional option for configuring a Controller via NewController.
type ControllerBuilderOption func(*controller)

// WithCrossfadeDuration is an option builder that sets the fade length used
// by CycleClip, in seconds. Values of zero or less make clip cycling switch
// immediately. The default is 0.25 seconds.
//
// Parameters:
//   - seconds: the crossfade duration in seconds
//
// Returns:
//   - ControllerBuilderOption: a function that applies the crossfade option to a controller
func WithCrossfadeDuration(seconds float32) ControllerBuilderOption {
	return func(c *controller) {
		c.crossfadeSeconds = seconds
	}
}
