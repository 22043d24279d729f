package domain

import "github.com/restburger/reservation-service/pkg/types"

// Settings is the restaurant-wide configuration singleton.
// It is stored as a single JSON document under the "settings" key and
// patched by shallow merge: fields absent from a patch keep their value.
type Settings struct {
	RestaurantName  string           `json:"restaurantName"`
	SupportWhatsApp string           `json:"supportWhatsApp"`
	SupportMessage  string           `json:"supportMessage"`
	Timezone        string           `json:"timezone"`
	OpeningHour     types.TimeString `json:"openingHour"`
	ClosingHour     types.TimeString `json:"closingHour"`
	SlotMinutes     int              `json:"slotMinutes"`
	MaxPerSlot      int              `json:"maxPerSlot"`
}

// SettingsPatch частичное обновление настроек. nil-поля не трогаются.
type SettingsPatch struct {
	RestaurantName  *string           `json:"restaurantName,omitempty"`
	SupportWhatsApp *string           `json:"supportWhatsApp,omitempty"`
	SupportMessage  *string           `json:"supportMessage,omitempty"`
	Timezone        *string           `json:"timezone,omitempty"`
	OpeningHour     *types.TimeString `json:"openingHour,omitempty"`
	ClosingHour     *types.TimeString `json:"closingHour,omitempty"`
	SlotMinutes     *int              `json:"slotMinutes,omitempty"`
	MaxPerSlot      *int              `json:"maxPerSlot,omitempty"`
}

// Apply накладывает патч на настройки (shallow merge).
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.RestaurantName != nil {
		s.RestaurantName = *p.RestaurantName
	}
	if p.SupportWhatsApp != nil {
		s.SupportWhatsApp = *p.SupportWhatsApp
	}
	if p.SupportMessage != nil {
		s.SupportMessage = *p.SupportMessage
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.OpeningHour != nil {
		s.OpeningHour = *p.OpeningHour
	}
	if p.ClosingHour != nil {
		s.ClosingHour = *p.ClosingHour
	}
	if p.SlotMinutes != nil {
		s.SlotMinutes = *p.SlotMinutes
	}
	if p.MaxPerSlot != nil {
		s.MaxPerSlot = *p.MaxPerSlot
	}
	return s
}

// DefaultSettings returns the values seeded on first startup.
func DefaultSettings() Settings {
	return Settings{
		RestaurantName:  "RestBurger",
		SupportWhatsApp: "+447785314195",
		SupportMessage:  "Hi! I need help with the reservation system.",
		Timezone:        "Europe/London",
		OpeningHour:     DefaultOpeningHour,
		ClosingHour:     DefaultClosingHour,
		SlotMinutes:     DefaultSlotMinutes,
		MaxPerSlot:      DefaultMaxPerSlot,
	}
}
