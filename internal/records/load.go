package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davewd/folio/internal/apperr"
)

// Fixture file names inside the data directory. Each holds one record kind.
const (
	projectsFile   = "projects.json"
	timelineFile   = "timeline.json"
	thoughtsFile   = "thoughts.json"
	booksFile      = "books.json"
	linksFile      = "links.json"
	mediaFile      = "media.json"
	podcastsFile   = "podcasts.json"
	tagStylesFile  = "project_tags.json"
	statStylesFile = "status_tags.json"
)

// Load reads every fixture file under dir into a new Snapshot.
//
// A missing file yields an empty collection for that kind; a file that exists
// but cannot be parsed is an error. The returned snapshot has Loaded() true
// and is never mutated afterwards.
func Load(dir string) (*Snapshot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("records: resolve data dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("records: data dir %s: %w", abs, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("records: stat data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("records: data path is not a directory: %s", abs)
	}

	snap := emptySnapshot()
	snap.loaded = true

	var projects struct {
		Projects []Project `json:"projects"`
	}
	if err := readFixture(abs, projectsFile, &projects); err != nil {
		return nil, err
	}
	if projects.Projects != nil {
		snap.Projects = projects.Projects
	}

	var timeline struct {
		Events []TimelineEvent `json:"events"`
	}
	if err := readFixture(abs, timelineFile, &timeline); err != nil {
		return nil, err
	}
	if timeline.Events != nil {
		snap.Timeline = timeline.Events
	}

	var thoughts struct {
		Thoughts []Thought `json:"thoughts"`
	}
	if err := readFixture(abs, thoughtsFile, &thoughts); err != nil {
		return nil, err
	}
	if thoughts.Thoughts != nil {
		snap.Thoughts = thoughts.Thoughts
	}

	var books struct {
		Books []Book `json:"books"`
	}
	if err := readFixture(abs, booksFile, &books); err != nil {
		return nil, err
	}
	if books.Books != nil {
		snap.Books = books.Books
	}

	var links struct {
		Links []ReadingLink `json:"links"`
	}
	if err := readFixture(abs, linksFile, &links); err != nil {
		return nil, err
	}
	if links.Links != nil {
		snap.Links = links.Links
	}

	var media struct {
		Media []Media `json:"media"`
	}
	if err := readFixture(abs, mediaFile, &media); err != nil {
		return nil, err
	}
	if media.Media != nil {
		snap.Media = media.Media
	}

	var podcasts struct {
		Podcasts []Podcast `json:"podcasts"`
	}
	if err := readFixture(abs, podcastsFile, &podcasts); err != nil {
		return nil, err
	}
	if podcasts.Podcasts != nil {
		snap.Podcasts = podcasts.Podcasts
	}

	var tagStyles struct {
		Tags map[string]TagStyle `json:"tags"`
	}
	if err := readFixture(abs, tagStylesFile, &tagStyles); err != nil {
		return nil, err
	}
	if tagStyles.Tags != nil {
		snap.TagStyles = tagStyles.Tags
	}

	var statusStyles struct {
		Statuses map[string]TagStyle `json:"statuses"`
	}
	if err := readFixture(abs, statStylesFile, &statusStyles); err != nil {
		return nil, err
	}
	if statusStyles.Statuses != nil {
		snap.StatusStyles = statusStyles.Statuses
	}

	return snap, nil
}

// readFixture decodes dir/name into target. A missing file is not an error.
func readFixture(dir, name string, target any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("records: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("records: parse %s: %w", name, err)
	}
	return nil
}
