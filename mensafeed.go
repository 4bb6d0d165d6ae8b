// Package mensafeed generates an OpenMensa v2 feed for the Zentralmensa
// Arnold-Bode-Straße (Studierendenwerk Kassel). It fetches the published
// weekly menu page, reduces it to markdown-shaped text, extracts the
// structured menu (days, categories, meals, notes, allergens, per-role
// prices) from that text, and renders the result as XML.
//
// This package contains domain types, the menu extraction logic, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, etree/).
package mensafeed
