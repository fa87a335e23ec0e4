package action

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	deliverycontext "menuboard/internal/delivery/context"
	domainerrors "menuboard/internal/domain/errors"
	"menuboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Action outcomes reported to the Recorder.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomePanic    = "panic"
)

// Recorder counts action outcomes.
type Recorder interface {
	RecordAction(action, outcome string)
}

// Actions exposes every menu operation behind the uniform Result boundary.
type Actions struct {
	categories usecase.CategoryUsecase
	products   usecase.ProductUsecase
	analytics  usecase.AnalyticsUsecase
	menu       usecase.MenuUsecase
	cart       usecase.CartUsecase
	recorder   Recorder
	logger     *slog.Logger
}

// Params holds dependencies for Actions, injected by Fx.
type Params struct {
	fx.In

	Categories usecase.CategoryUsecase
	Products   usecase.ProductUsecase
	Analytics  usecase.AnalyticsUsecase
	Menu       usecase.MenuUsecase
	Cart       usecase.CartUsecase
	Recorder   Recorder `optional:"true"`
	Logger     *slog.Logger
}

// New is the constructor for Actions.
func New(params Params) *Actions {
	return &Actions{
		categories: params.Categories,
		products:   params.Products,
		analytics:  params.Analytics,
		menu:       params.Menu,
		cart:       params.Cart,
		recorder:   params.Recorder,
		logger:     params.Logger,
	}
}

func (a *Actions) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// operation names an action, its payload key and the message used for unexpected failures.
type operation struct {
	name    string
	key     string
	failure string
	created bool
}

// run executes fn and converts its outcome, including a panic, into a Result.
func run[T any](ctx context.Context, a *Actions, op operation, fn func() (T, error)) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			a.log(ctx).Error("Action panicked",
				slog.String("action", op.name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			a.record(op.name, OutcomePanic)
			result = Err[T](http.StatusInternalServerError, domainerrors.CodeInternalError, op.failure)
		}
	}()

	data, err := fn()
	if err != nil {
		return fail[T](ctx, a, op, err)
	}

	a.record(op.name, OutcomeSuccess)
	if op.created {
		return Created(op.key, data)
	}

	return Ok(op.key, data)
}

func fail[T any](ctx context.Context, a *Actions, op operation, err error) Result[T] {
	if domainerrors.IsExpected(err) {
		appErr, _ := domainerrors.AsAppError(err)
		a.record(op.name, OutcomeRejected)
		a.log(ctx).Info("Action rejected",
			slog.String("action", op.name),
			slog.String("code", appErr.ErrorCode()),
			slog.String("reason", appErr.Message()),
		)

		return Err[T](appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	a.record(op.name, OutcomeFailed)
	a.log(ctx).Error("Action failed", slog.String("action", op.name), slog.Any("error", err))

	return Err[T](http.StatusInternalServerError, domainerrors.CodeInternalError, op.failure)
}

func (a *Actions) record(name, outcome string) {
	if a.recorder != nil {
		a.recorder.RecordAction(name, outcome)
	}
}

// unknownID stands in for identifiers that are not UUIDs. No stored row can carry it,
// so lookups with it fail as not-found after the usual input validation.
var unknownID = uuid.Max

// parseID maps a blank identifier to uuid.Nil and a malformed one to unknownID.
func parseID(raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return unknownID
	}

	return id
}

// parseOptionalID is parseID for optional references, where blank means absent.
func parseOptionalID(raw *string) *uuid.UUID {
	if raw == nil {
		return nil
	}

	id := parseID(*raw)

	return &id
}
