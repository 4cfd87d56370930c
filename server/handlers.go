package server

import (
	"net/http"
	"strconv"
	"time"

	"tailor-system/models"
	"tailor-system/services"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ── WhatsApp status lookup ──

type whatsAppRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

func (s *Server) handleWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req whatsAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PhoneNumber == "" {
		writeProblem(w, http.StatusBadRequest, "phone_required", "phoneNumber is required in the JSON body.")
		return
	}

	// Query-count bump is best-effort monitoring; a failure must not block
	// the status reply.
	if err := s.stores.Users.IncrementQueryCount(r.Context(), req.PhoneNumber); err != nil {
		s.lg.Error("increment_query_count", err, map[string]any{"phone": req.PhoneNumber})
	}

	orders, err := s.stores.Orders.GetOrdersByPhone(r.Context(), req.PhoneNumber)
	if err != nil {
		s.lg.Error("orders_by_phone", err, map[string]any{"phone": req.PhoneNumber})
		orders = nil
	}

	text := services.BuildStatusMessage(services.StatusMessageParams{
		Phone:        req.PhoneNumber,
		Orders:       orders,
		SiteURL:      s.cfg.Shop.SiteURL,
		ContactPhone: s.cfg.Shop.ContactPhone,
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// ── Log sink ──

type logsRequest struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func (s *Server) handleLogsGet(w http.ResponseWriter, _ *http.Request) {
	text, err := s.sink.Read()
	if err != nil {
		s.lg.Error("logs_read", err, nil)
		http.Error(w, "Error reading log file.", http.StatusInternalServerError)
		return
	}
	if text == "" {
		text = "No logs found. The application has not recorded any events yet."
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleLogsPost(w http.ResponseWriter, r *http.Request) {
	var req logsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := s.sink.Append(req.Level, req.Message, req.Details); err != nil {
		s.lg.Error("logs_append", err, nil)
		writeProblem(w, http.StatusInternalServerError, "log_write_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ── Orders ──

func orderFiltersFromQuery(r *http.Request) services.OrderSearchFilters {
	q := r.URL.Query()
	return services.OrderSearchFilters{
		Query:    q.Get("q"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		Status:   models.OrderStatus(q.Get("status")),
	}
}

// loadOrders degrades storage failures to an empty collection: the UI shows
// "no data" instead of an error page.
func (s *Server) loadOrders(r *http.Request) []models.Order {
	orders, err := s.stores.Orders.GetOrders(r.Context())
	if err != nil {
		s.lg.Error("orders_fetch", err, nil)
		return nil
	}
	return orders
}

func (s *Server) handleOrderSearch(w http.ResponseWriter, r *http.Request) {
	page := atoiDefault(r.URL.Query().Get("page"), 1)
	pageSize := atoiDefault(r.URL.Query().Get("page_size"), 5)
	filtered := services.ApplyOrderFilters(s.loadOrders(r), orderFiltersFromQuery(r))
	writeJSON(w, http.StatusOK, services.Paginate(filtered, page, pageSize))
}

func (s *Server) handleOrderBatch(w http.ResponseWriter, r *http.Request) {
	cursor := atoiDefault(r.URL.Query().Get("cursor"), 0)
	batchSize := atoiDefault(r.URL.Query().Get("batch_size"), 6)
	filtered := services.ApplyOrderFilters(s.loadOrders(r), orderFiltersFromQuery(r))
	writeJSON(w, http.StatusOK, services.CursorBatch(filtered, cursor, batchSize))
}

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var in services.PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	order, err := services.PlaceOrder(r.Context(), s.stores, in)
	if err != nil {
		s.lg.Error("order_create", err, map[string]any{"phone": in.CustomerPhone})
		writeProblem(w, http.StatusInternalServerError, "create_failed", err.Error())
		return
	}
	s.lg.Info("order_created", map[string]any{
		"order_id": order.OrderID, "rushed": order.IsApprovedRushed, "due": order.TargetDeliveryDate,
	})
	writeJSON(w, http.StatusCreated, map[string]any{
		"order":       order,
		"total_price": order.TotalPrice(),
	})
}

func (s *Server) handleOrderGet(w http.ResponseWriter, r *http.Request) {
	order, err := s.stores.Orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		s.lg.Error("order_get", err, nil)
	}
	if order == nil {
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleOrderUpdate(w http.ResponseWriter, r *http.Request) {
	var upd models.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	order, err := s.stores.Orders.UpdateOrder(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		s.lg.Error("order_update", err, nil)
		writeProblem(w, http.StatusInternalServerError, "update_failed", err.Error())
		return
	}
	if order == nil {
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	// Deleting an order does not reclaim the capacity booked for its date.
	deleted, err := s.stores.Orders.DeleteOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		s.lg.Error("order_delete", err, nil)
		writeProblem(w, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

// ── Customers ──

func (s *Server) loadUsers(r *http.Request) []models.User {
	users, err := s.stores.Users.GetUsers(r.Context())
	if err != nil {
		s.lg.Error("users_fetch", err, nil)
		return nil
	}
	return users
}

func userFiltersFromQuery(r *http.Request) services.UserSearchFilters {
	q := r.URL.Query()
	return services.UserSearchFilters{Query: q.Get("q"), SortBy: q.Get("sort")}
}

func (s *Server) handleCustomerSearch(w http.ResponseWriter, r *http.Request) {
	page := atoiDefault(r.URL.Query().Get("page"), 1)
	pageSize := atoiDefault(r.URL.Query().Get("page_size"), 5)
	filtered := services.ApplyUserFilters(s.loadUsers(r), userFiltersFromQuery(r))
	writeJSON(w, http.StatusOK, services.Paginate(filtered, page, pageSize))
}

func (s *Server) handleCustomerBatch(w http.ResponseWriter, r *http.Request) {
	cursor := atoiDefault(r.URL.Query().Get("cursor"), 0)
	batchSize := atoiDefault(r.URL.Query().Get("batch_size"), 6)
	filtered := services.ApplyUserFilters(s.loadUsers(r), userFiltersFromQuery(r))
	writeJSON(w, http.StatusOK, services.CursorBatch(filtered, cursor, batchSize))
}

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}
	created, err := s.stores.Users.CreateUser(r.Context(), u)
	if err != nil {
		s.lg.Error("customer_create", err, map[string]any{"phone": u.PhoneNumber})
		writeProblem(w, http.StatusInternalServerError, "create_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleCustomerGet(w http.ResponseWriter, r *http.Request) {
	user, err := s.stores.Users.GetUser(r.Context(), r.PathValue("uid"))
	if err != nil {
		s.lg.Error("customer_get", err, nil)
	}
	if user == nil {
		writeProblem(w, http.StatusNotFound, "not_found", "customer not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	user, err := s.stores.Users.UpdateUser(r.Context(), r.PathValue("uid"), upd)
	if err != nil {
		s.lg.Error("customer_update", err, nil)
		writeProblem(w, http.StatusInternalServerError, "update_failed", err.Error())
		return
	}
	if user == nil {
		writeProblem(w, http.StatusNotFound, "not_found", "customer not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ── Garment catalog ──

type garmentInfo struct {
	Type              string   `json:"type"`
	Price             int      `json:"price"`
	MeasurementFields []string `json:"measurement_fields"`
}

// handleGarments joins the fixed catalog with the current price table so the
// order form renders from one call.
func (s *Server) handleGarments(w http.ResponseWriter, r *http.Request) {
	settings, err := s.stores.Settings.GetSettings(r.Context())
	if err != nil {
		s.lg.Error("settings_get", err, nil)
	}
	out := make([]garmentInfo, 0, len(models.GarmentTypes))
	for _, g := range models.GarmentTypes {
		out = append(out, garmentInfo{
			Type:              g,
			Price:             settings.GarmentPrices[g],
			MeasurementFields: models.GarmentMeasurementFields[g],
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ── Settings & capacity ──

func (s *Server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := s.stores.Settings.GetSettings(r.Context())
	if err != nil {
		s.lg.Error("settings_get", err, nil)
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var upd models.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	settings, err := s.stores.Settings.UpdateSettings(r.Context(), upd)
	if err != nil {
		s.lg.Error("settings_update", err, nil)
		writeProblem(w, http.StatusInternalServerError, "update_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	settings, err := s.stores.Settings.GetSettings(r.Context())
	if err != nil {
		s.lg.Error("settings_get", err, nil)
	}
	writeJSON(w, http.StatusOK, services.CapacityForDate(settings, date))
}

// ── Helpers ──

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem emits a simplified problem+json error body.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return n
}
