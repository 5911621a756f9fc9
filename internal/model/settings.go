package model

// Settings holds the store contact configuration
type Settings struct {
	WhatsAppNumber string `json:"whatsappNumber"`
	AdminEmail     string `json:"adminEmail"`
}
