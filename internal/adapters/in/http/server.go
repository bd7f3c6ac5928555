package http

import (
	"net/http"

	"rides/internal/core/application/usecases/commands"
	"rides/internal/core/application/usecases/queries"
	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements servers.ServerInterface on top of the ride use cases.
// Handlers return domain errors unchanged; the HTTP error handler turns
// them into status codes.
type Server struct {
	// Command handlers
	createRideHandler commands.CreateRideCommandHandler
	editRideHandler   commands.EditRideCommandHandler
	startRideHandler  commands.StartRideCommandHandler
	finishRideHandler commands.FinishRideCommandHandler
	removeRideHandler commands.RemoveRideCommandHandler

	// Query handlers
	listRidesHandler   queries.ListRidesQueryHandler
	getRideHandler     queries.GetRideQueryHandler
	rideSummaryHandler queries.GetRideSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRideHandler commands.CreateRideCommandHandler,
	editRideHandler commands.EditRideCommandHandler,
	startRideHandler commands.StartRideCommandHandler,
	finishRideHandler commands.FinishRideCommandHandler,
	removeRideHandler commands.RemoveRideCommandHandler,
	listRidesHandler queries.ListRidesQueryHandler,
	getRideHandler queries.GetRideQueryHandler,
	rideSummaryHandler queries.GetRideSummaryQueryHandler,
) *Server {
	return &Server{
		createRideHandler:  createRideHandler,
		editRideHandler:    editRideHandler,
		startRideHandler:   startRideHandler,
		finishRideHandler:  finishRideHandler,
		removeRideHandler:  removeRideHandler,
		listRidesHandler:   listRidesHandler,
		getRideHandler:     getRideHandler,
		rideSummaryHandler: rideSummaryHandler,
	}
}

// ListRides handles GET /api/v1/rides.
func (s *Server) ListRides(ctx echo.Context, params servers.ListRidesParams) error {
	query := queries.NewListRidesQuery(params.State)

	rides, err := s.listRidesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Ride, len(rides))
	for i, r := range rides {
		response[i] = toRide(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRide handles POST /api/v1/rides.
func (s *Server) CreateRide(ctx echo.Context, params servers.CreateRideParams) error {
	cmd, err := commands.NewCreateRideCommand(kernel.NewUUID(), params.Origin, params.Destination, params.Distance)
	if err != nil {
		return err
	}

	created, err := s.createRideHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toRide(created))
}

// GetRide handles GET /api/v1/rides/{rideId}.
func (s *Server) GetRide(ctx echo.Context, rideID servers.RideId) error {
	id, err := kernel.UUIDFromGoogle(rideID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRideQuery(id)
	if err != nil {
		return err
	}

	r, err := s.getRideHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRide(r))
}

// EditRide handles PUT /api/v1/rides/{rideId}.
func (s *Server) EditRide(ctx echo.Context, rideID servers.RideId, params servers.EditRideParams) error {
	id, err := kernel.UUIDFromGoogle(rideID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewEditRideCommand(id, params.Origin, params.Destination, params.Distance)
	if err != nil {
		return err
	}

	edited, err := s.editRideHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRide(edited))
}

// StartRide handles POST /api/v1/rides/{rideId}/start.
func (s *Server) StartRide(ctx echo.Context, rideID servers.RideId) error {
	id, err := kernel.UUIDFromGoogle(rideID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartRideCommand(id)
	if err != nil {
		return err
	}

	started, err := s.startRideHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRide(started))
}

// FinishRide handles POST /api/v1/rides/{rideId}/finish.
func (s *Server) FinishRide(ctx echo.Context, rideID servers.RideId) error {
	id, err := kernel.UUIDFromGoogle(rideID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFinishRideCommand(id)
	if err != nil {
		return err
	}

	finished, err := s.finishRideHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRide(finished))
}

// RemoveRide handles DELETE /api/v1/rides/{rideId} and returns the removed ride.
func (s *Server) RemoveRide(ctx echo.Context, rideID servers.RideId) error {
	id, err := kernel.UUIDFromGoogle(rideID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveRideCommand(id)
	if err != nil {
		return err
	}

	removed, err := s.removeRideHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRide(removed))
}

// GetRideStats handles GET /api/v1/stats/rides.
func (s *Server) GetRideStats(ctx echo.Context) error {
	summary, err := s.rideSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetRideSummaryQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.RideSummary{
		Requested:  summary.Requested,
		InProgress: summary.InProgress,
		Finished:   summary.Finished,
		Total:      summary.Total,
	})
}

func toRide(snap ride.Snapshot) servers.Ride {
	return servers.Ride{
		Id:          snap.ID.Bytes(),
		Origin:      snap.Origin,
		Destination: snap.Destination,
		Distance:    snap.Distance,
		Fare:        snap.Fare,
		State:       servers.RideState(snap.State.String()),
	}
}
