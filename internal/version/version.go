// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Spring-smoothed scrolling, cursor follower, collapsible nav
// 0.2.0 - Star field backdrop with twinkle animation, resize regeneration
// 0.1.0 - Initial release: hero, projects, experience accordion, headless modes
