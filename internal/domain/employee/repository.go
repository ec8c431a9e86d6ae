package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email string, excludeID string) (bool, error)
	AddPoints(ctx context.Context, id string, points int) error
	UpdatePassword(ctx context.Context, id string, passwordHash string, mustChange bool) error
	CountByDepartment(ctx context.Context) (map[string]int64, error)
}
