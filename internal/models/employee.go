package models

import "fmt"

// Employee represents a staff member of the events company.
type Employee struct {
	// ID is the employee number (collection key).
	ID int `json:"employee_id" bson:"employee_id"`

	Name       string `json:"name" bson:"name"`
	Department string `json:"department" bson:"department"`
	JobTitle   string `json:"job_title" bson:"job_title"`

	// BasicSalary is the yearly base pay.
	BasicSalary float64 `json:"basic_salary" bson:"basic_salary"`

	// ManagerID is the key of another Employee. Unchecked reference;
	// 0 is commonly used for "no manager".
	ManagerID int `json:"manager_id" bson:"manager_id"`
}

// Key returns the employee ID.
func (e Employee) Key() int { return e.ID }

// Details renders the employee for display.
func (e Employee) Details() string {
	return fmt.Sprintf("%s, %s, %s, Salary: $%s, Manager ID: %d",
		e.Name, e.Department, e.JobTitle, formatDecimal(e.BasicSalary), e.ManagerID)
}
