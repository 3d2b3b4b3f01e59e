package domain

// Ordered site content managed from the admin panel. Public listings are
// sorted by Order ascending.

// Service is a legal service offered on the landing page.
type Service struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Order       int    `json:"order" bson:"order"`
}

// Advantage is a "why choose us" bullet on the landing page.
type Advantage struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Order       int    `json:"order" bson:"order"`
}

// TeamMember is a lawyer or staff member shown in the team section.
type TeamMember struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Position string `json:"position" bson:"position"`
	Photo    string `json:"photo,omitempty" bson:"photo,omitempty"`
	Bio      string `json:"bio" bson:"bio"`
	Order    int    `json:"order" bson:"order"`
}

// Review is a client testimonial.
type Review struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Author string `json:"author" bson:"author"`
	Text   string `json:"text" bson:"text"`
	Rating int    `json:"rating" bson:"rating"`
	Photo  string `json:"photo,omitempty" bson:"photo,omitempty"`
	Order  int    `json:"order" bson:"order"`
}
