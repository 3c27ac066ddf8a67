package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/YashVerma-code/OS-Assignment/sim"
)

// SchedulerHandler serves the simulation API.
type SchedulerHandler interface {
	Policies(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

// DefaultMaxHorizon caps the clock of every request when the server is not
// given a cap of its own.
const DefaultMaxHorizon int64 = 1_000_000

// SchedulerHandlerImpl runs every request on a fresh simulator, so requests
// never share engine state.
type SchedulerHandlerImpl struct {
	defaults   sim.Config
	maxHorizon int64
}

// NewSchedulerHandlerImpl creates a handler whose requests fall back to
// defaults for unset quantum and horizon. Every run is bounded by maxHorizon
// (DefaultMaxHorizon when <= 0); larger or unset request horizons are clamped
// to it.
func NewSchedulerHandlerImpl(defaults sim.Config, maxHorizon int64) *SchedulerHandlerImpl {
	if maxHorizon <= 0 {
		maxHorizon = DefaultMaxHorizon
	}
	defaults = defaults.WithDefaults()
	if defaults.Horizon <= 0 || defaults.Horizon > maxHorizon {
		defaults.Horizon = maxHorizon
	}
	return &SchedulerHandlerImpl{defaults: defaults, maxHorizon: maxHorizon}
}

// NewApp builds the fiber application with the /api/v1 routes.
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return ctx.Status(code).JSON(ErrorResponse{Error: err.Error()})
		},
	})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/simulate/:policy", h.Simulate)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(PoliciesResponse{
		Policies:       sim.PolicyNames(),
		DefaultPolicy:  s.defaults.Policy,
		DefaultQuantum: s.defaults.Quantum,
	})
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	policy := ctx.Params("policy")
	if !sim.IsValidPolicy(policy) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown policy "+policy)
	}
	request, err := s.parse(ctx)
	if err != nil {
		return err
	}
	result, err := sim.Simulate(request.Config(policy), request.Processes)
	if err != nil {
		return runError(err)
	}
	logrus.Debugf("simulate %s: %d processes, %d ticks", policy, len(request.Processes), result.Metrics.TotalTicks)
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return err
	}
	for _, p := range request.Policies {
		if !sim.IsValidPolicy(p) || p == "" {
			return fiber.NewError(fiber.StatusBadRequest, "unknown policy "+p)
		}
	}
	results, err := sim.Compare(request.Config(""), request.Processes, request.Policies)
	if err != nil {
		return runError(err)
	}
	return ctx.JSON(CompareResponse{Results: results})
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*SimulateRequest, error) {
	request := new(SimulateRequest)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if request.Quantum == 0 {
		request.Quantum = s.defaults.Quantum
	}
	if request.Horizon == 0 {
		request.Horizon = s.defaults.Horizon
	}
	if request.Horizon > s.maxHorizon {
		logrus.Debugf("clamping horizon %d to %d", request.Horizon, s.maxHorizon)
		request.Horizon = s.maxHorizon
	}
	for _, d := range request.Processes {
		if request.Horizon > 0 && d.ArrivalTime > request.Horizon {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("process %s arrives at %d, after the horizon %d", d.Name, d.ArrivalTime, request.Horizon))
		}
	}
	return request, nil
}

// runError maps simulation errors to HTTP errors: bad input is the client's
// fault, anything else aborted the run.
func runError(err error) error {
	if errors.Is(err, sim.ErrInvalidDescriptor) || errors.Is(err, sim.ErrInvalidConfig) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	logrus.Warnf("simulation aborted: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
