package database

import (
	"log"

	"hrms-backend/internal/model"
	"hrms-backend/internal/utils"

	"gorm.io/gorm"
)

// SeedUser is one account to provision: plaintext password in, digest out.
type SeedUser struct {
	Email    string
	Password string
	Role     model.Role
}

// DefaultUsers is the deployment account list.
var DefaultUsers = []SeedUser{
	{Email: "admin@ssspl.com", Password: "admin123", Role: model.RoleAdmin},
	{Email: "superadmin@ssspl.com", Password: "superadmin123", Role: model.RoleSuperAdmin},
	{Email: "hr@ssspl.com", Password: "hr123", Role: model.RoleHR},
	{Email: "manager@ssspl.com", Password: "manager123", Role: model.RoleManager},

	{Email: "rajesh.kumar@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "priya.sharma@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "amit.verma@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "sunita.reddy@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "vikram.singh@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "ananya.iyer@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "rohit.patel@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "neha.jain@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "suresh.nair@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "pooja.mehta@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "arjun.malhotra@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "kavita.desai@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "manoj.yadav@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "deepak.chopra@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "swati.kulkarni@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "ravi.teja@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
	{Email: "meenakshi.gupta@ssspl.com", Password: "employee123", Role: model.RoleEmployee},
}

// SeedUsers provisions accounts idempotently: insert-if-absent keyed on
// email, existing accounts are left untouched.
func SeedUsers(db *gorm.DB, users []SeedUser) error {
	for _, su := range users {
		hashed, err := utils.HashPassword(su.Password)
		if err != nil {
			return err
		}

		user := model.User{
			Email:          su.Email,
			HashedPassword: hashed,
			Role:           su.Role,
		}
		if err := db.FirstOrCreate(&user, model.User{Email: su.Email}).Error; err != nil {
			return err
		}
		log.Printf("seeded %s (%s)", su.Email, su.Role)
	}
	return nil
}
