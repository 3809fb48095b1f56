package content

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/termfolio/internal/version"
)

// SnapshotExport is the JSON-serializable representation of the portfolio.
type SnapshotExport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
	Portfolio   Portfolio `json:"portfolio"`
}

// ExportSnapshot wraps the portfolio with export metadata.
func ExportSnapshot(p Portfolio, generatedAt time.Time) *SnapshotExport {
	return &SnapshotExport{
		GeneratedAt: generatedAt,
		Version:     version.Version,
		Portfolio:   p,
	}
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteResume writes the portfolio as a plain-text resume, for the --print
// headless mode and for terminals that cannot host the TUI.
func WriteResume(w io.Writer, p Portfolio) {
	rule := strings.Repeat("─", 72)

	fmt.Fprintln(w, p.Hero.Name)
	if p.Hero.Tagline != "" {
		fmt.Fprintln(w, p.Hero.Tagline)
	}
	if p.Hero.Location != "" {
		fmt.Fprintln(w, p.Hero.Location)
	}

	if len(p.About) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "ABOUT")
		for _, line := range p.About {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if len(p.Projects) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "PROJECTS")
		for _, proj := range p.Projects {
			fmt.Fprintf(w, "  %-14s %s\n", truncateStr(proj.Name, 14), proj.Summary)
			if len(proj.Tech) > 0 {
				fmt.Fprintf(w, "  %-14s [%s]\n", "", strings.Join(proj.Tech, ", "))
			}
			if proj.Link != "" {
				fmt.Fprintf(w, "  %-14s %s\n", "", proj.Link)
			}
		}
	}

	if len(p.Experience) > 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "EXPERIENCE")
		for _, item := range p.Experience {
			fmt.Fprintf(w, "  %s — %s (%s)\n", item.Role, item.Org, item.Period)
			for _, d := range item.Details {
				fmt.Fprintf(w, "    · %s\n", d)
			}
		}
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CONTACT")
	if p.Contact.Email != "" {
		fmt.Fprintf(w, "  email    %s\n", p.Contact.Email)
	}
	if p.Contact.GitHub != "" {
		fmt.Fprintf(w, "  github   %s\n", p.Contact.GitHub)
	}
	if p.Contact.Website != "" {
		fmt.Fprintf(w, "  website  %s\n", p.Contact.Website)
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
