package main

// This is the main entry point that simply imports and uses the modularized app components. The actual application logic is split across:
// - app_core.go: Core application structure, startup and persistence
// - app_handlers.go: Event handlers for user interactions
// - app_menus.go: Menu setup and handlers

const (
	AppName      = "Contingencia"
	AppID        = "mx.contingencia.mercaderia"
	AppVersion   = "1.0.0"
	WindowWidth  = 1000
	WindowHeight = 500
)
