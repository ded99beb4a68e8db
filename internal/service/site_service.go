package service

import "github.com/noah-isme/syntaxscout-api/internal/models"

var (
	publicRoutes    = []string{"/", "/courses", "/login", "/signup", "/reset-password", "/contact", "/lifetime-access"}
	dashboardRoutes = []string{"/dashboard", "/dashboard/courses", "/dashboard/assignments", "/dashboard/grades", "/dashboard/messages", "/dashboard/settings"}
)

// SiteService exposes the process-wide shell settings.
type SiteService struct {
	theme string
}

// NewSiteService fixes the theme for the process lifetime.
func NewSiteService(theme string) *SiteService {
	if theme == "" {
		theme = "light"
	}
	return &SiteService{theme: theme}
}

// Settings returns the theme and the route map.
func (s *SiteService) Settings() models.SiteSettings {
	return models.SiteSettings{
		Theme:           s.theme,
		PublicRoutes:    append([]string(nil), publicRoutes...),
		DashboardRoutes: append([]string(nil), dashboardRoutes...),
	}
}
