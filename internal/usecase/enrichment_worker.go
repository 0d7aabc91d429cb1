package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/familyplate/backend/internal/domain"
)

// EnrichmentWorker backfills nutrient data for hollow foods by calling the
// AI estimator. Single-food jobs are dispatched fire-and-forget through a
// buffered channel so log writes never wait on the estimator; the catalog
// backfill sweep runs detached and paces its external calls.
//
// Delivery is at-least-once: two near-simultaneous logs of the same hollow
// food may both enqueue it, but EnsureFoodNutrients re-checks for existing
// rows and inserts are conflict-ignoring, so duplicates are harmless.
type EnrichmentWorker struct {
	foods         domain.FoodRepository
	nutrients     domain.NutrientRepository
	foodNutrients domain.FoodNutrientRepository
	estimator     domain.Estimator
	jobs          chan enrichJob
	sweepDelay    time.Duration
}

type enrichJob struct {
	id     string
	foodID uint
}

// NewEnrichmentWorker creates a worker with a job queue of the given size.
// sweepDelay is the fixed pause between estimator calls during a backfill
// sweep.
func NewEnrichmentWorker(
	foods domain.FoodRepository,
	nutrients domain.NutrientRepository,
	foodNutrients domain.FoodNutrientRepository,
	estimator domain.Estimator,
	queueSize int,
	sweepDelay time.Duration,
) *EnrichmentWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	if sweepDelay <= 0 {
		sweepDelay = 2 * time.Second
	}
	return &EnrichmentWorker{
		foods:         foods,
		nutrients:     nutrients,
		foodNutrients: foodNutrients,
		estimator:     estimator,
		jobs:          make(chan enrichJob, queueSize),
		sweepDelay:    sweepDelay,
	}
}

// Start launches the background job loop.
func (w *EnrichmentWorker) Start() {
	go w.run()
}

func (w *EnrichmentWorker) run() {
	for job := range w.jobs {
		if err := w.EnsureFoodNutrients(context.Background(), job.foodID); err != nil {
			// Best effort: the food stays hollow and the next log of it retries
			log.Printf("[Enrich] job %s food %d failed: %v", job.id, job.foodID, err)
		}
	}
}

// Enqueue schedules a single-food enrichment job without blocking. When the
// queue is full the job is dropped; a later log of the same food will
// enqueue it again.
func (w *EnrichmentWorker) Enqueue(foodID uint) {
	job := enrichJob{id: uuid.NewString(), foodID: foodID}
	select {
	case w.jobs <- job:
	default:
		log.Printf("[Enrich] queue full, dropping job for food %d", foodID)
	}
}

// EnsureFoodNutrients checks whether the food has any nutrient rows and, if
// not, estimates and persists them. Idempotent: a food that already has
// rows is a no-op with no estimator call.
func (w *EnrichmentWorker) EnsureFoodNutrients(ctx context.Context, foodID uint) error {
	has, err := w.foodNutrients.HasAny(ctx, foodID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	food, err := w.foods.GetByID(ctx, foodID)
	if err != nil {
		return err
	}

	log.Printf("[Enrich] food %d (%s) has no nutrients, estimating", food.ID, food.Name)
	estimates, err := w.estimator.EstimateNutrients(ctx, food.Name)
	if err != nil {
		return err
	}

	inserted, err := w.InsertEstimates(ctx, foodID, estimates)
	if err != nil {
		return err
	}
	log.Printf("[Enrich] stored %d nutrient rows for %s", inserted, food.Name)
	return nil
}

// InsertEstimates resolves estimate codes against the catalog and inserts
// the positive amounts. Unknown codes and amounts <= 0 are skipped.
func (w *EnrichmentWorker) InsertEstimates(ctx context.Context, foodID uint, estimates map[string]float64) (int, error) {
	codes := make([]string, 0, len(estimates))
	for code := range estimates {
		codes = append(codes, code)
	}

	known, err := w.nutrients.GetByCodes(ctx, codes)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, n := range known {
		amount := estimates[n.Code]
		if amount <= 0 {
			continue
		}
		err := w.foodNutrients.Insert(ctx, &domain.FoodNutrient{
			FoodID:        foodID,
			NutrientID:    n.ID,
			AmountPer100g: amount,
		})
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// BackfillNutrient sweeps every food lacking the given nutrient and asks
// the estimator for it, one call per food with a fixed inter-call delay.
// Per-food failures are logged and skipped; the sweep itself runs to
// completion independently of any request lifecycle.
func (w *EnrichmentWorker) BackfillNutrient(ctx context.Context, nutrient *domain.Nutrient) {
	log.Printf("[Backfill] starting sweep for %s (%s)", nutrient.Name, nutrient.Code)

	foods, err := w.foods.ListAll(ctx)
	if err != nil {
		log.Printf("[Backfill] listing foods failed: %v", err)
		return
	}

	limiter := rate.NewLimiter(rate.Every(w.sweepDelay), 1)
	for _, food := range foods {
		has, err := w.foodNutrients.Has(ctx, food.ID, nutrient.ID)
		if err != nil {
			log.Printf("[Backfill] check failed for %s: %v", food.Name, err)
			continue
		}
		if has {
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			log.Printf("[Backfill] sweep aborted: %v", err)
			return
		}

		amount, err := w.estimator.EstimateSingleNutrient(ctx, food.Name, nutrient.Name)
		if err != nil {
			log.Printf("[Backfill] estimate failed for %s: %v", food.Name, err)
			continue
		}
		if amount < 0 {
			continue
		}

		err = w.foodNutrients.Insert(ctx, &domain.FoodNutrient{
			FoodID:        food.ID,
			NutrientID:    nutrient.ID,
			AmountPer100g: amount,
		})
		if err != nil {
			log.Printf("[Backfill] insert failed for %s: %v", food.Name, err)
		}
	}

	log.Printf("[Backfill] completed sweep for %s", nutrient.Name)
}
