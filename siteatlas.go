// Package siteatlas extracts the navigational structure of a website and
// materializes its content. Given a root URL and a small declarative
// configuration (an HTML tag plus CSS-class selectors for category and
// article links), it builds a typed tree of categories and articles,
// classifies leaf pages into a small content model, and can capture
// referenced images into a self-contained offline bundle.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package siteatlas
