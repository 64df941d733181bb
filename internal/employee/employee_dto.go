package employee

type CreateEmployeeRequest struct {
	FullName    string   `json:"full_name" binding:"required,max=255"`
	Email       string   `json:"email" binding:"required,email"`
	Department  string   `json:"department" binding:"required"`
	Position    string   `json:"position" binding:"required"`
	JoiningDate string   `json:"joining_date" binding:"required"`
	Salary      int64    `json:"salary" binding:"omitempty,gte=0"`
	Skills      []string `json:"skills"`
	ManagerID   *string  `json:"manager_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest applies field by field: only non-nil fields change,
// and status only moves through its own validated field. There is no blind
// partial merge that could clobber invariant-bearing columns.
type UpdateEmployeeRequest struct {
	FullName    *string   `json:"full_name" binding:"omitempty,max=255"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Department  *string   `json:"department"`
	Position    *string   `json:"position"`
	JoiningDate *string   `json:"joining_date"`
	Salary      *int64    `json:"salary" binding:"omitempty,gte=0"`
	Skills      *[]string `json:"skills"`
	ManagerID   *string   `json:"manager_id" binding:"omitempty,uuid"`
	Status      *string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

// Filter narrows GetAll; zero values mean "no restriction".
type Filter struct {
	Department string
	Status     string
	Query      string // matched against name, email, and position
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	EmployeeNumber string   `json:"employee_number"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Department     string   `json:"department,omitempty"`
	Position       string   `json:"position,omitempty"`
	JoiningDate    string   `json:"joining_date,omitempty"`
	Salary         int64    `json:"salary,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ManagerID      *string  `json:"manager_id,omitempty"`
	Status         string   `json:"status"`
}
