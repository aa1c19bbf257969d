// Package console holds the read-only settings shared across console views.
package console

import (
	"time"
)

// ConfirmationTarget names what a confirmation dialog is about.
type ConfirmationTarget int

const (
	TargetEmpty ConfirmationTarget = iota
	TargetProject
	TargetProjectMember
	TargetUser
	TargetPolicy
	TargetToggleConfirm
	TargetEndpoint
	TargetRepository
	TargetTag
	TargetConfig
	TargetConfigRoute
	TargetConfigTab
)

// ConfirmationButtons is the button set of a confirmation dialog.
type ConfirmationButtons int

const (
	ConfirmCancel ConfirmationButtons = iota
	YesNo
	DeleteCancel
	Close
)

// ConfirmationState is the outcome of a confirmation dialog.
type ConfirmationState int

const (
	NotApplicable ConfirmationState = iota
	Confirmed
	Cancelled
)

// ListMode controls whether a list allows edits.
type ListMode string

const (
	ReadOnly ListMode = "readonly"
	Full     ListMode = "full"
)

// Routes are the well known console paths.
type Routes struct {
	SignIn         string
	EmbeddedSignIn string
	SignUp         string
	EmbeddedSignUp string
	Root           string
	Default        string
}

// Settings is built once by Default and only read afterwards.
type Settings struct {
	routes          Routes
	langs           []string
	langNames       map[string]string
	defaultLang     string
	dismissInterval time.Duration
	projectTypes    map[int]string
	roleKeys        map[int]string
	roleKeysByName  map[string]string
}

// Default returns the console settings.
func Default() Settings {
	return Settings{
		routes: Routes{
			SignIn:         "/sign-in",
			EmbeddedSignIn: "/harbor/sign-in",
			SignUp:         "/sign-in?sign_up=true",
			EmbeddedSignUp: "/harbor/sign-in?sign_up=true",
			Root:           "/harbor",
			Default:        "/harbor/projects",
		},
		langs: []string{"en-us", "zh-cn", "es-es"},
		langNames: map[string]string{
			"en-us": "English",
			"zh-cn": "中文简体",
			"es-es": "Español",
		},
		defaultLang:     "en-us",
		dismissInterval: 10 * time.Second,
		projectTypes: map[int]string{
			0: "PROJECT.ALL_PROJECTS",
			1: "PROJECT.PRIVATE_PROJECTS",
			2: "PROJECT.PUBLIC_PROJECTS",
		},
		roleKeys: map[int]string{
			1: "MEMBER.PROJECT_ADMIN",
			2: "MEMBER.DEVELOPER",
			3: "MEMBER.GUEST",
		},
		roleKeysByName: map[string]string{
			"projectAdmin": "MEMBER.PROJECT_ADMIN",
			"developer":    "MEMBER.DEVELOPER",
			"guest":        "MEMBER.GUEST",
		},
	}
}

// Routes returns the console paths.
func (set Settings) Routes() Routes {
	return set.routes
}

// Languages returns the supported language codes.
func (set Settings) Languages() []string {
	return append([]string{}, set.langs...)
}

// DefaultLanguage returns the fallback language code.
func (set Settings) DefaultLanguage() string {
	return set.defaultLang
}

// LanguageName returns the display name of a language code.
func (set Settings) LanguageName(code string) (name string, ok bool) {
	name, ok = set.langNames[code]
	return
}

// DismissInterval is how long an alert stays up.
func (set Settings) DismissInterval() time.Duration {
	return set.dismissInterval
}

// ProjectTypeKey returns the message key of a project type filter.
func (set Settings) ProjectTypeKey(typ int) (key string, ok bool) {
	key, ok = set.projectTypes[typ]
	return
}

// RoleKey returns the message key of a member role id.
func (set Settings) RoleKey(id int) (key string, ok bool) {
	key, ok = set.roleKeys[id]
	return
}

// RoleKeyByName returns the message key of a member role name.
func (set Settings) RoleKeyByName(name string) (key string, ok bool) {
	key, ok = set.roleKeysByName[name]
	return
}
