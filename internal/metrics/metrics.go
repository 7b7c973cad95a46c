package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecipesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipes_created_total",
		Help: "Total number of recipes created.",
	})
	RecipesDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipes_deleted_total",
		Help: "Total number of recipes deleted.",
	})
	IngredientsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ingredients_created_total",
		Help: "Total number of ingredients created.",
	})
)

func init() {
	prometheus.MustRegister(RecipesCreated, RecipesDeleted, IngredientsCreated)
}
