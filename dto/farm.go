package dto

type FarmResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Province    string   `json:"province"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Images      []string `json:"images"`
}

type CreateFarmRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address"`
	Province    string   `json:"province"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Images      []string `json:"images"`
}

type UpdateFarmRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Province    string   `json:"province"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Images      []string `json:"images"`
}

// FarmSearchFilters bộ lọc tìm trại, lưu lại trong Redis để gộp với lần tìm sau
type FarmSearchFilters struct {
	Query    string `json:"query"`
	Province string `json:"province"`
	Variety  string `json:"variety"`
}
