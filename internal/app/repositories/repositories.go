package repositories

// Repositories holds all the repository instances
type Repositories struct {
	InstructorRepository *InstructorRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		InstructorRepository: NewInstructorRepository(),
	}
}
