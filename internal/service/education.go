package service

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/optifit/web/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrArticleNotFound = errors.New("article not found")

type Article struct {
	Title       string
	Slug        string
	Icon        string
	Order       int
	Content     string
	LastUpdated string
}

const educationDir = "education"

// EducationService serves the markdown articles under education/ in the
// content tree. Articles are cached unless reload is set.
type EducationService struct {
	content fs.FS
	reload  bool
	parser  *markdown.Parser

	mu       sync.Mutex
	articles []*Article
}

func NewEducationService(content fs.FS, reload bool) *EducationService {
	return &EducationService{
		content: content,
		reload:  reload,
		parser:  markdown.NewParser(),
	}
}

// Articles returns all articles ordered by their "order" frontmatter, then
// title.
func (s *EducationService) Articles() ([]*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.articles != nil && !s.reload {
		return s.articles, nil
	}

	articles, err := s.load()
	if err != nil {
		return nil, err
	}
	s.articles = articles
	return articles, nil
}

func (s *EducationService) Article(slug string) (*Article, error) {
	articles, err := s.Articles()
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, ErrArticleNotFound
}

func (s *EducationService) load() ([]*Article, error) {
	files, err := fs.ReadDir(s.content, educationDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []*Article{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read education directory: %w", err)
	}

	articles := []*Article{}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		article, err := s.loadArticle(slug)
		if err != nil {
			return nil, fmt.Errorf("failed to load article %s: %w", slug, err)
		}
		articles = append(articles, article)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].Order != articles[j].Order {
			return articles[i].Order < articles[j].Order
		}
		return articles[i].Title < articles[j].Title
	})
	return articles, nil
}

func (s *EducationService) loadArticle(slug string) (*Article, error) {
	filePath := path.Join(educationDir, slug+".md")
	content, err := fs.ReadFile(s.content, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}
	icon, _ := meta["icon"].(string)
	order, _ := meta["order"].(int)

	lastUpdated := parseDate(meta["lastUpdated"])
	if lastUpdated == "" {
		info, err := fs.Stat(s.content, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to get file info: %w", err)
		}
		lastUpdated = info.ModTime().Format("January 2, 2006")
	}

	return &Article{
		Title:       title,
		Slug:        slug,
		Icon:        icon,
		Order:       order,
		Content:     string(html),
		LastUpdated: lastUpdated,
	}, nil
}

func parseDate(value any) string {
	var dateStr string
	switch v := value.(type) {
	case string:
		dateStr = v
	case time.Time:
		return v.Format("January 2, 2006")
	default:
		return ""
	}

	for _, layout := range []string{"2006-01-02", "2006/01/02", "Jan 2, 2006", "January 2, 2006", time.RFC3339} {
		t, err := time.Parse(layout, dateStr)
		if err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return dateStr
}
