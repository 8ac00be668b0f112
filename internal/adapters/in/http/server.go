// Package http exposes the parcel tracking application over a REST API.
// Handlers translate JSON requests into commands and queries and map
// application errors to status codes; no framework types reach the core.
package http

import (
	"net/http"

	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/commands"
	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/queries"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler         commands.CreateParcelCommandHandler
	updateParcelHandler         commands.UpdateParcelCommandHandler
	deleteParcelHandler         commands.DeleteParcelCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler
	deleteNotificationHandler   commands.DeleteNotificationCommandHandler

	// Query handlers
	getParcelByIDHandler         queries.GetParcelByIDQueryHandler
	getParcelByTrackingIDHandler queries.GetParcelByTrackingIDQueryHandler
	getAllParcelsHandler         queries.GetAllParcelsQueryHandler
	getUserParcelsHandler        queries.GetUserParcelsQueryHandler
	getTrackingHistoryHandler    queries.GetTrackingHistoryQueryHandler
	getUserNotificationsHandler  queries.GetUserNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	deleteNotificationHandler commands.DeleteNotificationCommandHandler,
	getParcelByIDHandler queries.GetParcelByIDQueryHandler,
	getParcelByTrackingIDHandler queries.GetParcelByTrackingIDQueryHandler,
	getAllParcelsHandler queries.GetAllParcelsQueryHandler,
	getUserParcelsHandler queries.GetUserParcelsQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	getUserNotificationsHandler queries.GetUserNotificationsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:          createParcelHandler,
		updateParcelHandler:          updateParcelHandler,
		deleteParcelHandler:          deleteParcelHandler,
		markNotificationReadHandler:  markNotificationReadHandler,
		deleteNotificationHandler:    deleteNotificationHandler,
		getParcelByIDHandler:         getParcelByIDHandler,
		getParcelByTrackingIDHandler: getParcelByTrackingIDHandler,
		getAllParcelsHandler:         getAllParcelsHandler,
		getUserParcelsHandler:        getUserParcelsHandler,
		getTrackingHistoryHandler:    getTrackingHistoryHandler,
		getUserNotificationsHandler:  getUserNotificationsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	parcels := e.Group("/api/v1/parcels")
	parcels.POST("", s.CreateParcel)
	parcels.GET("", s.GetAllParcels)
	parcels.GET("/my-parcels", s.GetMyParcels)
	parcels.GET("/track/:trackingId", s.TrackParcel)
	parcels.GET("/:id", s.GetParcel)
	parcels.PUT("/:id", s.UpdateParcel)
	parcels.DELETE("/:id", s.DeleteParcel)
	parcels.GET("/:id/history", s.GetTrackingHistory)

	notifications := e.Group("/api/v1/notifications")
	notifications.GET("", s.GetNotifications)
	notifications.GET("/unread", s.GetUnreadNotifications)
	notifications.PUT("/:id/read", s.MarkNotificationRead)
	notifications.DELETE("/:id", s.DeleteNotification)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateParcel handles POST /api/v1/parcels. The parcel and its tracking ID
// are created server-side; the full read model is returned.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	params, err := request.toParams()
	if err != nil {
		return writeError(ctx, err)
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, params)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithParcel(ctx, parcelID, http.StatusCreated)
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithParcel(ctx, parcelID, http.StatusOK)
}

// TrackParcel handles GET /api/v1/parcels/track/:trackingId, the public
// lookup by human-facing tracking ID.
func (s *Server) TrackParcel(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("trackingId", err))
	}

	query, err := queries.NewGetParcelByTrackingIDQuery(trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getParcelByTrackingIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelJSON(result))
}

// GetAllParcels handles GET /api/v1/parcels.
func (s *Server) GetAllParcels(ctx echo.Context) error {
	result, err := s.getAllParcelsHandler.Handle(ctx.Request().Context(), queries.NewGetAllParcelsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelListJSON(result))
}

// GetMyParcels handles GET /api/v1/parcels/my-parcels?userId= and returns
// parcels the user sent or is receiving.
func (s *Server) GetMyParcels(ctx echo.Context) error {
	userID, err := parseUUID(ctx.QueryParam("userId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserParcelsQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getUserParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelListJSON(result))
}

// UpdateParcel handles PUT /api/v1/parcels/:id.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	parcelID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	update, err := request.toUpdate()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelCommand(parcelID, update)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithParcel(ctx, parcelID, http.StatusOK)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrackingHistory handles GET /api/v1/parcels/:id/history.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	parcelID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingHistoryQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTrackingEventListJSON(result))
}

// GetNotifications handles GET /api/v1/notifications?userId=.
func (s *Server) GetNotifications(ctx echo.Context) error {
	return s.listNotifications(ctx, false)
}

// GetUnreadNotifications handles GET /api/v1/notifications/unread?userId=.
func (s *Server) GetUnreadNotifications(ctx echo.Context) error {
	return s.listNotifications(ctx, true)
}

func (s *Server) listNotifications(ctx echo.Context, unreadOnly bool) error {
	userID, err := parseUUID(ctx.QueryParam("userId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserNotificationsQuery(userID, unreadOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getUserNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNotificationListJSON(result))
}

// MarkNotificationRead handles PUT /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	notificationID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(notificationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithParcel(ctx echo.Context, parcelID kernel.UUID, status int) error {
	query, err := queries.NewGetParcelByIDQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getParcelByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toParcelJSON(result))
}

func parseUUID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
