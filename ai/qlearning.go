package ai

import (
	"math"

	"golang.org/x/exp/rand"
)

// Action is a move relative to the current heading.
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight

	numActions = 3
)

func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "straight"
	}
}

// State is what the agent sees from the head of the snake.
type State struct {
	Danger  [numActions]bool // a fatal cell one step away, per action
	FoodDir [2]int           // sign of the food offset in the snake's frame: ahead, right
}

// Key is the Q table row for the state.
func (s State) Key() string {
	b := make([]byte, 0, numActions+2)
	for _, d := range s.Danger {
		if d {
			b = append(b, '1')
		} else {
			b = append(b, '0')
		}
	}
	b = append(b, byte('1'+s.FoodDir[0]), byte('1'+s.FoodDir[1]))
	return string(b)
}

// QTable maps a state key to the value of each action.
type QTable map[string][]float64

// QLearning is an epsilon-greedy tabular agent. The table lives only for the
// life of the process.
type QLearning struct {
	QTable         QTable
	LearningRate   float64
	Discount       float64
	Epsilon        float64
	InitialEpsilon float64
	MinEpsilon     float64
	EpsilonDecay   float64
	Episodes       int
	TotalReward    float64

	rng *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:         make(QTable),
		LearningRate:   0.1,
		Discount:       0.9,
		Epsilon:        0.3,
		InitialEpsilon: 0.3,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.95,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// GetAction picks an action with an epsilon-greedy policy.
func (q *QLearning) GetAction(s State) Action {
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(numActions))
	}
	return q.BestAction(s)
}

// BestAction returns the greedy action. Ties go to the lowest action that is
// not dangerous.
func (q *QLearning) BestAction(s State) Action {
	values := q.row(s.Key())

	best := Straight
	bestValue := math.Inf(-1)
	for a, v := range values {
		if s.Danger[a] {
			v -= 1e-6
		}
		if v > bestValue {
			bestValue = v
			best = Action(a)
		}
	}
	return best
}

// Update applies the Q-learning rule for one transition. A terminal
// transition has no future value.
func (q *QLearning) Update(s State, a Action, reward float64, next State, terminal bool) {
	values := q.row(s.Key())

	target := reward
	if !terminal {
		target += q.Discount * maxValue(q.row(next.Key()))
	}
	values[a] += q.LearningRate * (target - values[a])
	q.TotalReward += reward
}

// EndEpisode decays exploration after a finished round.
func (q *QLearning) EndEpisode() {
	q.Episodes++
	q.Epsilon = q.InitialEpsilon * math.Pow(q.EpsilonDecay, float64(q.Episodes))
	if q.Epsilon < q.MinEpsilon {
		q.Epsilon = q.MinEpsilon
	}
}

func (q *QLearning) row(key string) []float64 {
	values, ok := q.QTable[key]
	if !ok {
		values = make([]float64, numActions)
		q.QTable[key] = values
	}
	return values
}

func maxValue(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
