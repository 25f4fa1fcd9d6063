package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/core/service"
)

// NotificationHandler serves the admin notification panel.
type NotificationHandler struct {
	center   ports.NotificationCenter
	notifier *service.Notifier
}

func NewNotificationHandler(center ports.NotificationCenter, notifier *service.Notifier) *NotificationHandler {
	return &NotificationHandler{center: center, notifier: notifier}
}

// dispatchRequest describes one domain event. Which fields are required
// depends on the type.
type dispatchRequest struct {
	Type        string  `json:"type" validate:"required,oneof=contact registration order comment general"`
	Name        string  `json:"name" validate:"required_if=Type contact,required_if=Type registration"`
	Subject     string  `json:"subject"`
	Event       string  `json:"event" validate:"required_if=Type registration"`
	OrderNumber string  `json:"order_number" validate:"required_if=Type order"`
	Customer    string  `json:"customer" validate:"required_if=Type order"`
	Total       float64 `json:"total" validate:"gte=0"`
	Author      string  `json:"author" validate:"required_if=Type comment"`
	Topic       string  `json:"topic" validate:"required_if=Type comment"`
	Title       string  `json:"title" validate:"required_if=Type general"`
	Message     string  `json:"message" validate:"required_if=Type general"`
	Link        string  `json:"link"`
}

type notificationList struct {
	Notifications []domain.NotificationEntry `json:"notifications"`
	Unread        int                        `json:"unread"`
}

// List returns the retained notifications, newest first.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationList
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, notificationList{
		Notifications: h.center.List(),
		Unread:        h.center.Unread(),
	})
}

// Dispatch records a domain event as a notification.
//
// @Summary      Dispatch a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      dispatchRequest  true  "Domain event"
// @Success      201   {object}  domain.NotificationEntry
// @Failure      400   {object}  map[string]string
// @Router       /notifications [post]
func (h *NotificationHandler) Dispatch(c echo.Context) error {
	var req dispatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var entry domain.NotificationEntry
	switch domain.NotificationType(req.Type) {
	case domain.NotificationContact:
		entry = h.notifier.ContactMessage(req.Name, req.Subject)
	case domain.NotificationRegistration:
		entry = h.notifier.EventRegistration(req.Name, req.Event)
	case domain.NotificationOrder:
		entry = h.notifier.StoreOrder(req.OrderNumber, req.Customer, req.Total)
	case domain.NotificationComment:
		entry = h.notifier.CommunityComment(req.Author, req.Topic)
	default:
		entry = h.notifier.General(req.Title, req.Message, req.Link)
	}

	return c.JSON(http.StatusCreated, entry)
}

// MarkRead flags one notification as read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Param        id   path  string  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if !h.center.MarkRead(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead flags every notification as read.
//
// @Summary      Mark all notifications read
// @Tags         notifications
// @Success      204
// @Router       /notifications/read [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	h.center.MarkAllRead()
	return c.NoContent(http.StatusNoContent)
}

// Clear drops every notification.
//
// @Summary      Clear notifications
// @Tags         notifications
// @Success      204
// @Router       /notifications [delete]
func (h *NotificationHandler) Clear(c echo.Context) error {
	h.center.Clear()
	return c.NoContent(http.StatusNoContent)
}

// Stream pushes new notifications as server-sent events until the client
// disconnects.
//
// @Summary      Stream notifications
// @Tags         notifications
// @Produce      text/event-stream
// @Success      200
// @Router       /notifications/stream [get]
func (h *NotificationHandler) Stream(c echo.Context) error {
	entries := h.center.Subscribe(c.Request().Context())

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(res, "id: %s\nevent: notification\ndata: %s\n\n", entry.ID, data); err != nil {
			return nil
		}
		res.Flush()
	}
	return nil
}
