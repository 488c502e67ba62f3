package trivia

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quizDraws = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_draws_total",
		Help:      "Quiz draws by outcome (served, exhausted).",
	}, []string{"outcome"})

	mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "question_mutations_total",
		Help:      "Question create/delete attempts by result.",
	}, []string{"op", "result"})
)
