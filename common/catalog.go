package common

// Effect identifies a lighting effect. The numeric values match the effect
// bytes used by the unified daemon interface.
type Effect uint8

const (
	EffectOff Effect = iota
	EffectOn
	EffectStatic
	EffectBreathing
	EffectBreathingDual
	EffectBreathingRandom
	EffectBlinking
	EffectSpectrum
	EffectWave
	EffectReactive
)

type effectInfo struct {
	token  string
	label  string
	legacy string
}

// effectTable is indexed by Effect.
var effectTable = [...]effectInfo{
	EffectOff:             {token: `off`, label: `Off`, legacy: `None`},
	EffectOn:              {token: `on`, label: `On`},
	EffectStatic:          {token: `static`, label: `Static`, legacy: `Static`},
	EffectBreathing:       {token: `breathing`, label: `Breathing`, legacy: `BreathSingle`},
	EffectBreathingDual:   {token: `breathing_dual`, label: `Breathing Dual`, legacy: `BreathDual`},
	EffectBreathingRandom: {token: `breathing_random`, label: `Breathing Random`, legacy: `BreathRandom`},
	EffectBlinking:        {token: `blinking`, label: `Blinking`, legacy: `Blinking`},
	EffectSpectrum:        {token: `spectrum`, label: `Spectrum`, legacy: `Spectrum`},
	EffectWave:            {token: `wave`, label: `Wave`, legacy: `Wave`},
	EffectReactive:        {token: `reactive`, label: `Reactive`, legacy: `Reactive`},
}

var tokenToEffect = func() map[string]Effect {
	m := make(map[string]Effect, len(effectTable))
	for i, info := range effectTable {
		m[info.token] = Effect(i)
	}
	return m
}()

// Effects returns every known effect in catalog order.
func Effects() []Effect {
	effects := make([]Effect, len(effectTable))
	for i := range effectTable {
		effects[i] = Effect(i)
	}
	return effects
}

// Valid reports whether e is part of the catalog.
func (e Effect) Valid() bool {
	return int(e) < len(effectTable)
}

// Token returns the lowercase capability token for the effect, e.g.
// `breathing_dual`, or an empty string for an unknown effect.
func (e Effect) Token() string {
	if !e.Valid() {
		return ``
	}
	return effectTable[e].token
}

// Label returns the human readable name of the effect.
func (e Effect) Label() string {
	if !e.Valid() {
		return `Unknown`
	}
	return effectTable[e].label
}

// LegacyFragment returns the method name fragment the legacy daemon uses for
// the effect's setter, as in `set<Location><Fragment>`. Effects the legacy
// daemon has no setter for return an empty string.
func (e Effect) LegacyFragment() string {
	if !e.Valid() {
		return ``
	}
	return effectTable[e].legacy
}

func (e Effect) String() string {
	return e.Label()
}

// EffectFromToken looks up an effect by its capability token.
func EffectFromToken(token string) (Effect, bool) {
	e, ok := tokenToEffect[token]
	return e, ok
}
