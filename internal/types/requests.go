package types

// RegisterRequest is the body of POST /auth/register. Only presence is
// enforced; email shape and password strength are left to the client.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TermRequest is the body of cuisine/tag create and update.
type TermRequest struct {
	Name string `json:"name"`
}

// RecipeRequest is the body of recipe create and update. Cuisine and Tags
// carry 24-hex term ids; the service resolves them to snapshots. Field
// presence is validated in the service so that create and update report the
// exact same failures.
type RecipeRequest struct {
	Name            string   `json:"name"`
	CookingDuration string   `json:"cooking_duration"`
	Difficulty      string   `json:"difficulty"`
	Cuisine         string   `json:"cuisine"`
	Tags            []string `json:"tags"`
	Ingredients     []string `json:"ingredients"`
	ImageURL        string   `json:"image_url"`
	Description     string   `json:"description"`
	Steps           []string `json:"steps"`
}
