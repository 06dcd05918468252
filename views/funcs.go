package views

import "github.com/navigatingnature/naturesite"

// Funcs returns the full set of page components for the engine.
func Funcs() naturesite.ViewFuncs {
	return naturesite.ViewFuncs{
		Home:            Home,
		About:           About,
		Services:        Services,
		BlogIndex:       BlogIndex,
		BlogPost:        BlogPost,
		Calendar:        Calendar,
		MapExplorer:     MapExplorer,
		Community:       Community,
		Contact:         Contact,
		AdminLogin:      AdminLogin,
		AdminDashboard:  AdminDashboard,
		AdminPosts:      AdminPosts,
		AdminEvents:     AdminEvents,
		AdminModeration: AdminModeration,
		AdminSettings:   AdminSettings,
		NotFound:        NotFound,
		ServerError:     ServerError,
	}
}
