package mockapi

import (
	"fmt"
	"time"

	"github.com/chybatronik/goAdminPanel/internal/models"
)

// seedUsers generates n deterministic demo records: "User 1" through
// "User n", roles and statuses assigned round-robin, join dates spread
// across 2023.
func seedUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	roles := models.Roles()

	for i := 0; i < n; i++ {
		status := models.StatusActive
		if i%2 != 0 {
			status = models.StatusInactive
		}

		users = append(users, models.User{
			ID:         i + 1,
			Name:       fmt.Sprintf("User %d", i+1),
			Email:      fmt.Sprintf("user%d@example.com", i+1),
			Role:       roles[i%len(roles)],
			Status:     status,
			DateJoined: seedJoinDate(i),
		})
	}

	return users
}

// seedJoinDate spreads join dates over 2023 so date sorting has distinct keys.
func seedJoinDate(i int) time.Time {
	month := time.Month(i%12 + 1)
	day := i%28 + 1
	return time.Date(2023, month, day, 0, 0, 0, 0, time.UTC)
}
