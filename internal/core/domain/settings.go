package domain

// Settings is the singleton site configuration record: contact details,
// social links and legal texts rendered across the public pages.
type Settings struct {
	SiteName      string `json:"site_name" bson:"site_name"`
	Phone         string `json:"phone" bson:"phone"`
	Email         string `json:"email" bson:"email"`
	Address       string `json:"address" bson:"address"`
	WorkingHours  string `json:"working_hours" bson:"working_hours"`
	Description   string `json:"description" bson:"description"`
	VkLink        string `json:"vk_link" bson:"vk_link"`
	TelegramLink  string `json:"telegram_link" bson:"telegram_link"`
	GuaranteeText string `json:"guarantee_text" bson:"guarantee_text"`
	PrivacyPolicy string `json:"privacy_policy" bson:"privacy_policy"`
}
