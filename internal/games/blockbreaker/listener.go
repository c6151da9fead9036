package blockbreaker

// HitListener is told about every destroyed brick, synchronously, with the
// score after the hit was counted. A session always has one.
type HitListener interface {
	OnBrickHit(hit Hit, score int)
}

// HitListenerFunc adapts a function to HitListener.
type HitListenerFunc func(hit Hit, score int)

// OnBrickHit calls f.
func (f HitListenerFunc) OnBrickHit(hit Hit, score int) {
	f(hit, score)
}

// NopHitListener ignores hits.
type NopHitListener struct{}

// OnBrickHit does nothing.
func (NopHitListener) OnBrickHit(Hit, int) {}
