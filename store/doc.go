// Package store keeps the actor catalogue in memory and persists it as a
// document.
//
// Every mutation marks the store unsaved, drops the cached document tree
// and notifies OnChange subscribers. Load and Save go through a gomap
// Mapper configured with the model registry.
package store
