package services

import (
	"strings"
	"testing"

	"tailor-system/models"
)

func TestBuildStatusMessageNoOrders(t *testing.T) {
	msg := BuildStatusMessage(StatusMessageParams{
		Phone:        "+919876543210",
		SiteURL:      "https://example.com",
		ContactPhone: "+91 94428 98544",
	})
	for _, want := range []string{
		"S Kumaran Tailors",
		"We couldn't find any orders under the number +919876543210.",
		"Contact: +91 94428 98544",
		"https://example.com",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildStatusMessageWithOrders(t *testing.T) {
	msg := BuildStatusMessage(StatusMessageParams{
		Phone: "+919876543210",
		Orders: []models.Order{
			{OrderID: "ORD-001", GarmentType: "Shirt", Status: models.StatusStitching, TargetDeliveryDate: "2026-09-10"},
			{OrderID: "ORD-002", GarmentType: "Blouse", Status: models.StatusReady, TargetDeliveryDate: "2026-09-12"},
		},
		SiteURL:      "https://example.com/",
		ContactPhone: "+91 94428 98544",
	})
	for _, want := range []string{
		"Order #ORD-001* - Shirt",
		"⏳ Stitching",
		"Order #ORD-002* - Blouse",
		"✅ Ready",
		"📅 2026-09-10",
		"https://example.com/tracking",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "couldn't find any orders") {
		t.Error("order message used the no-orders variant")
	}
	if got := strings.Count(msg, "\n---\n"); got != 1 {
		t.Errorf("separator count = %d, want 1", got)
	}
}

func TestStatusEmoji(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		want   string
	}{
		{models.StatusReady, "✅"},
		{models.StatusDelivered, "🛍️"},
		{models.StatusPending, "⏳"},
		{models.StatusCutting, "⏳"},
	}
	for _, tt := range tests {
		if got := statusEmoji(tt.status); got != tt.want {
			t.Errorf("emoji(%s) = %s, want %s", tt.status, got, tt.want)
		}
	}
}
