package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"reel/internal/logging"
	"reel/internal/slider"
	"reel/internal/slider/anim"
)

var validate = validator.New()

// Validate checks struct tags and that the animation is registered
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if name := cfg.Slider.Animation.Name; name != "" {
		known := false
		for _, n := range anim.Names() {
			if n == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("invalid config: %w: %q (have %s)", anim.ErrUnknown, name, strings.Join(anim.Names(), ", "))
		}
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options converts the slider section into controller options. Indicators,
// logger and callbacks are left for the caller.
func (s SliderSettings) Options() slider.Options {
	opts := slider.DefaultOptions()
	opts.Disabled = s.Disabled
	opts.Auto = s.Auto
	opts.Circle = s.Circle
	if s.AutoInterval > 0 {
		opts.AutoInterval = s.AutoInterval.Std()
	}
	opts.SwitchDelay = s.SwitchDelay.Std()
	if s.Animation.Name != "" {
		opts.Animation = s.Animation.Name
	}
	opts.AnimationOptions = anim.Options{
		Easing:    s.Animation.Easing,
		Interval:  s.Animation.Interval.Std(),
		Direction: anim.Direction(s.Animation.Direction),
	}
	return opts
}
