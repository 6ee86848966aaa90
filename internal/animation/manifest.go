package animation

import (
	"encoding/json"
	"sort"
	"sync"
)

// Manifest is a Controller that records registrations for the browser runtime.
// Released registrations are dropped from its JSON.
type Manifest struct {
	mu     sync.Mutex
	nextID int
	intros map[int][]Schedule
	scrubs map[int]scrubRecord
}

type scrubRecord struct {
	target string
	effect ScrollEffect
}

func NewManifest() *Manifest {
	return &Manifest{
		intros: make(map[int][]Schedule),
		scrubs: make(map[int]scrubRecord),
	}
}

func (m *Manifest) Intro(steps ...Step) (Handle, error) {
	planned, _, err := Plan(steps)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.intros[id] = planned
	return m.handle(func() { delete(m.intros, id) }), nil
}

func (m *Manifest) Scrub(target string, effect ScrollEffect) (Handle, error) {
	if target == "" {
		return nil, ErrNoTargets
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.scrubs[id] = scrubRecord{target: target, effect: effect}
	return m.handle(func() { delete(m.scrubs, id) }), nil
}

// Len is the number of live registrations.
func (m *Manifest) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.intros) + len(m.scrubs)
}

func (m *Manifest) handle(release func()) Handle {
	return &handle{release: func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		release()
	}}
}

type handle struct {
	once    sync.Once
	release func()
}

func (h *handle) Release() { h.once.Do(h.release) }

type manifestJSON struct {
	Intros []introJSON `json:"intros"`
	Scrubs []scrubJSON `json:"scrubs"`
}

type introJSON struct {
	ID    int        `json:"id"`
	Once  bool       `json:"once"`
	Ease  string     `json:"ease"`
	Steps []stepJSON `json:"steps"`
}

type stepJSON struct {
	Target   string  `json:"target"`
	From     Tween   `json:"from"`
	To       Tween   `json:"to"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type scrubJSON struct {
	ID     int    `json:"id"`
	Target string `json:"target"`
	Start  string `json:"start"`
	End    string `json:"end"`
	From   Tween  `json:"from"`
	To     Tween  `json:"to"`
}

// MarshalJSON renders live registrations in registration order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := manifestJSON{Intros: []introJSON{}, Scrubs: []scrubJSON{}}
	for _, id := range sortedKeys(m.intros) {
		intro := introJSON{ID: id, Once: true, Ease: "power2.out"}
		for _, s := range m.intros[id] {
			intro.Steps = append(intro.Steps, stepJSON{
				Target:   s.Target,
				From:     s.From,
				To:       Rest,
				Start:    s.Offset.Seconds(),
				Duration: s.Duration.Seconds(),
			})
		}
		out.Intros = append(out.Intros, intro)
	}
	for _, id := range sortedKeys(m.scrubs) {
		rec := m.scrubs[id]
		out.Scrubs = append(out.Scrubs, scrubJSON{
			ID:     id,
			Target: rec.target,
			Start:  rec.effect.Start,
			End:    rec.effect.End,
			From:   rec.effect.From,
			To:     rec.effect.To,
		})
	}
	return json.Marshal(out)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
