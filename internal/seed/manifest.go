package seed

import (
	"fmt"
	"os"
	"time"

	"quill/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Manifest describes a deterministic dataset loaded from a YAML file, used
// for demo environments where random content won't do.
type Manifest struct {
	Users []ManifestUser `yaml:"users"`
	Posts []ManifestPost `yaml:"posts"`
}

type ManifestUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Admin    bool   `yaml:"admin"`
}

type ManifestPost struct {
	Title        string     `yaml:"title"`
	Content      string     `yaml:"content"`
	Author       string     `yaml:"author"`
	Status       string     `yaml:"status"`
	Category     string     `yaml:"category"`
	Tags         []string   `yaml:"tags"`
	ScheduledFor *time.Time `yaml:"scheduled_for"`
	Views        uint       `yaml:"views"`
	Comments     []string   `yaml:"comments"`
}

// LoadManifest reads and parses a YAML seed manifest.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(raw)
}

// ParseManifest parses YAML manifest bytes.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	for i, u := range m.Users {
		if u.Username == "" || u.Email == "" {
			return nil, fmt.Errorf("manifest user %d: username and email are required", i)
		}
	}
	for i, p := range m.Posts {
		if p.Title == "" {
			return nil, fmt.Errorf("manifest post %d: title is required", i)
		}
		switch p.Status {
		case "", models.PostStatusDraft, models.PostStatusPublished:
		default:
			return nil, fmt.Errorf("manifest post %q: invalid status %q", p.Title, p.Status)
		}
	}
	return &m, nil
}

// ApplyManifest persists the manifest contents. Post authors are matched to
// manifest users by username; unmatched authors become ownerless posts.
func (s *Seeder) ApplyManifest(m *Manifest) error {
	byUsername := make(map[string]*models.User, len(m.Users))
	for _, mu := range m.Users {
		password := mu.Password
		if password == "" {
			password = "password123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &models.User{
			Username: mu.Username,
			Email:    mu.Email,
			Password: string(hash),
			IsAdmin:  mu.Admin,
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("create user %q: %w", mu.Username, err)
		}
		byUsername[mu.Username] = user
	}

	for _, mp := range m.Posts {
		status := mp.Status
		if status == "" {
			status = models.PostStatusDraft
		}

		post := &models.Post{
			Title:        mp.Title,
			Content:      mp.Content,
			Author:       mp.Author,
			Status:       status,
			ScheduledFor: mp.ScheduledFor,
			Views:        mp.Views,
		}
		if post.Author == "" {
			post.Author = models.DefaultAuthorName
		}
		if owner, ok := byUsername[mp.Author]; ok {
			post.AuthorID = &owner.ID
		}
		if status == models.PostStatusPublished {
			post.Publish(time.Now())
		}

		if mp.Category != "" {
			var cat models.Category
			if err := s.db.Where(models.Category{Name: mp.Category}).FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			post.CategoryID = &cat.ID
		}
		for _, name := range mp.Tags {
			var tag models.Tag
			if err := s.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			post.Tags = append(post.Tags, tag)
		}

		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("create post %q: %w", mp.Title, err)
		}

		for _, body := range mp.Comments {
			comment := &models.Comment{
				PostID:     post.ID,
				AuthorName: models.AnonymousCommenter,
				Body:       body,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
