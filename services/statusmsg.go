package services

import (
	"fmt"
	"strings"

	"tailor-system/models"
)

// StatusMessageParams feeds the bilingual (Tamil/English) status reply sent
// back over WhatsApp and Telegram.
type StatusMessageParams struct {
	Phone        string
	Orders       []models.Order
	SiteURL      string
	ContactPhone string
}

const shopHeader = "🧵 *எஸ் குமரன் டெய்லர்ஸ் | S Kumaran Tailors*"

func statusEmoji(status models.OrderStatus) string {
	switch status {
	case models.StatusReady:
		return "✅"
	case models.StatusDelivered:
		return "🛍️"
	default:
		return "⏳"
	}
}

// BuildStatusMessage formats the customer's orders as WhatsApp-style text.
// With no orders it returns the "no orders found" variant.
func BuildStatusMessage(p StatusMessageParams) string {
	trackingLink := strings.TrimRight(p.SiteURL, "/") + "/tracking"

	if len(p.Orders) == 0 {
		var b strings.Builder
		b.WriteString(shopHeader + "\n\n")
		b.WriteString("வணக்கம்! 🙏\n")
		b.WriteString("Hello from S Kumaran Tailors!\n\n")
		fmt.Fprintf(&b, "%s என்ற எண்ணில் ஆர்டர்கள் எதுவும் இல்லை.\n", p.Phone)
		fmt.Fprintf(&b, "We couldn't find any orders under the number %s.\n\n", p.Phone)
		b.WriteString("சமீபத்தில் ஆர்டர் செய்திருந்தால், கடையை நேரடியாக தொடர்பு கொள்ளுங்கள்.\n")
		b.WriteString("If you recently placed an order, please contact us directly.\n\n")
		fmt.Fprintf(&b, "📞 தொடர்புக்கு / Contact: %s\n", p.ContactPhone)
		fmt.Fprintf(&b, "🌐 வலைதளம் / Website: %s", p.SiteURL)
		return b.String()
	}

	var b strings.Builder
	b.WriteString(shopHeader + " ✂️\n\n")
	b.WriteString("வணக்கம்! உங்கள் ஆர்டர் நிலை:\n")
	b.WriteString("Hello! Here is the status of your orders:\n\n")
	for i, o := range p.Orders {
		fmt.Fprintf(&b, "*ஆர்டர் / Order #%s* - %s\n", o.OrderID, o.GarmentType)
		fmt.Fprintf(&b, "நிலை / Status: %s %s\n", statusEmoji(o.Status), o.Status)
		fmt.Fprintf(&b, "டெலிவரி தேதி / Due Date: 📅 %s\n", o.TargetDeliveryDate)
		if i < len(p.Orders)-1 {
			b.WriteString("\n---\n\n")
		}
	}
	fmt.Fprintf(&b, "\n\n📱 ஆர்டர் நிலையை இங்கே பாருங்கள் / Track your order online:\n%s\n", trackingLink)
	fmt.Fprintf(&b, "📞 தொடர்புக்கு / Contact: %s\n\n", p.ContactPhone)
	b.WriteString("எஸ் குமரன் டெய்லர்ஸை தேர்ந்தெடுத்ததற்கு நன்றி!\nThank you for choosing S Kumaran Tailors! 🙏")
	return b.String()
}
