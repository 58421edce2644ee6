package behavior

import (
	"fmt"
	"regexp"

	"github.com/lixenwraith/fishtank/swim"
)

// Spec describes a movement strategy without committing to an instance.
// At most one of Name, Impl, Func may be set; Options rides along with Name
// only. The zero Spec resolves to Horizontal.
//
// Name and Func resolve to a fresh instance every time. Impl is handed back
// as-is, intentionally shared; callers supplying one accept the rule that no
// entity state lives on the behavior value.
type Spec struct {
	Name    string        // preset: horizontal, wander, sine, zigzag, seek
	Options *Options      // preset tuning, only valid with Name
	Impl    swim.Behavior // prebuilt behavior, used as-is
	Func    MoveFunc      // plain movement function
}

// Options bundles the tuning knobs of the named presets. Zero fields take
// the preset's default; fields a preset does not read are ignored.
type Options struct {
	Chance    float64  // wander: per-tick nudge probability
	Amplitude float64  // sine, zigzag: rows of deviation
	Period    float64  // sine, zigzag: ticks per full cycle
	Patterns  []string // seek: regular expressions in priority order
	Handoff   *Spec    // seek: behavior after arrival, nil means horizontal
}

// Resolve turns a specification into a runnable behavior.
// Malformed shapes and unknown preset names fail here, at configuration
// time, never mid-animation.
func Resolve(sp Spec) (swim.Behavior, error) {
	set := 0
	if sp.Name != "" {
		set++
	}
	if sp.Impl != nil {
		set++
	}
	if sp.Func != nil {
		set++
	}
	if set > 1 {
		return nil, fmt.Errorf("behavior spec sets %d of name, impl and func, want at most one", set)
	}
	if sp.Options != nil && sp.Name == "" {
		return nil, fmt.Errorf("behavior options require a preset name")
	}

	switch {
	case sp.Impl != nil:
		return sp.Impl, nil
	case sp.Func != nil:
		return funcBehavior{fn: sp.Func}, nil
	case sp.Name == "":
		return Horizontal{}, nil
	}
	return resolvePreset(sp.Name, sp.Options)
}

func resolvePreset(name string, opts *Options) (swim.Behavior, error) {
	if opts == nil {
		opts = &Options{}
	}
	switch name {
	case "horizontal":
		return Horizontal{}, nil
	case "wander":
		return Wander{Chance: opts.Chance}, nil
	case "sine":
		return Sine{Amplitude: opts.Amplitude, Period: opts.Period}, nil
	case "zigzag":
		return Zigzag{Amplitude: opts.Amplitude, Period: opts.Period}, nil
	case "seek":
		return newSeek(opts)
	}
	return nil, fmt.Errorf("unknown behavior preset %q", name)
}

func newSeek(opts *Options) (swim.Behavior, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("seek behavior needs at least one pattern")
	}

	patterns := make([]*regexp.Regexp, 0, len(opts.Patterns))
	for _, p := range opts.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("seek pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	var handoff Spec
	if opts.Handoff != nil {
		// The hand-off spec must itself resolve
		if _, err := Resolve(*opts.Handoff); err != nil {
			return nil, fmt.Errorf("seek handoff: %w", err)
		}
		handoff = *opts.Handoff
	}

	return Seek{Patterns: patterns, Handoff: handoff}, nil
}
