// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAdminPassword is the development admin password. Override it with
// the -admin-password flag when seeding anything shared.
const DefaultAdminPassword = "admin12345"

var categoryNames = []string{"Engineering", "Travel", "Food", "Music", "Books"}

var tagNames = []string{"go", "webdev", "tutorial", "opinion", "notes", "review"}

// Seeder populates the database with demo content.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded content. Order matters for foreign keys.
func (s *Seeder) ClearAll() error {
	for _, stmt := range []string{
		"DELETE FROM comments",
		"DELETE FROM post_tags",
		"DELETE FROM posts",
		"DELETE FROM tags",
		"DELETE FROM categories",
		"DELETE FROM users",
	} {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("cleanup failed at %q: %w", stmt, err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// EnsureAdmin creates the admin account when the users table is empty.
// Returns the admin user whether created or already present.
func (s *Seeder) EnsureAdmin(username, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("is_admin = ?", true).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, err
	}
	log.Printf("Created admin user %q", username)
	return admin, nil
}

// CreateUser persists a fake user. All seeded users share the password
// "password123" so they are usable in manual testing.
func (s *Seeder) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), s.rand.Intn(10000)),
		Email:    gofakeit.Email(),
		Password: string(hash),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a fake post for the given author. Roughly a fifth of
// the posts stay drafts and a few of those carry a future schedule.
func (s *Seeder) CreatePost(author *models.User, categories []models.Category, tags []models.Tag) (*models.Post, error) {
	post := &models.Post{
		Title:    gofakeit.Sentence(5),
		Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Author:   author.Username,
		AuthorID: &author.ID,
		Status:   models.PostStatusPublished,
		Views:    uint(s.rand.Intn(500)),
	}

	// realistic created_at spread
	daysBack := s.rand.Intn(90)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour)

	if s.rand.Intn(5) == 0 {
		post.Status = models.PostStatusDraft
		if s.rand.Intn(2) == 0 {
			due := time.Now().Add(time.Duration(1+s.rand.Intn(72)) * time.Hour)
			post.ScheduledFor = &due
		}
	} else {
		publishedAt := post.CreatedAt.Add(time.Duration(s.rand.Intn(48)) * time.Hour)
		post.PublishedAt = &publishedAt
	}

	if len(categories) > 0 {
		cat := categories[s.rand.Intn(len(categories))]
		post.CategoryID = &cat.ID
	}
	if len(tags) > 0 {
		n := 1 + s.rand.Intn(3)
		picked := map[uint]bool{}
		for i := 0; i < n; i++ {
			tag := tags[s.rand.Intn(len(tags))]
			if !picked[tag.ID] {
				picked[tag.ID] = true
				post.Tags = append(post.Tags, tag)
			}
		}
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a fake comment on the post. About half the comments
// come from registered users, the rest from anonymous visitors.
func (s *Seeder) CreateComment(post *models.Post, users []*models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:     post.ID,
		AuthorName: models.AnonymousCommenter,
		Body:       gofakeit.Sentence(12),
	}
	if len(users) > 0 && s.rand.Intn(2) == 0 {
		user := users[s.rand.Intn(len(users))]
		comment.UserID = &user.ID
		comment.AuthorName = user.Username
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// Taxonomy ensures the base categories and tags exist and returns them.
func (s *Seeder) Taxonomy() ([]models.Category, []models.Tag, error) {
	var categories []models.Category
	for _, name := range categoryNames {
		var cat models.Category
		if err := s.db.Where(models.Category{Name: name}).FirstOrCreate(&cat).Error; err != nil {
			return nil, nil, err
		}
		categories = append(categories, cat)
	}

	var tags []models.Tag
	for _, name := range tagNames {
		var tag models.Tag
		if err := s.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, nil, err
		}
		tags = append(tags, tag)
	}
	return categories, tags, nil
}

// Run seeds the full demo dataset: an admin, fake users, posts and comments.
func (s *Seeder) Run(numUsers, numPosts int) error {
	admin, err := s.EnsureAdmin("admin", "admin@example.com", DefaultAdminPassword)
	if err != nil {
		return err
	}

	categories, tags, err := s.Taxonomy()
	if err != nil {
		return err
	}

	users := []*models.User{admin}
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", numUsers)

	for i := 0; i < numPosts; i++ {
		author := users[s.rand.Intn(len(users))]
		post, err := s.CreatePost(author, categories, tags)
		if err != nil {
			return err
		}
		for j := s.rand.Intn(6); j > 0; j-- {
			if _, err := s.CreateComment(post, users); err != nil {
				return err
			}
		}
	}
	log.Printf("Created %d posts", numPosts)

	return nil
}
