package scaffold

import "path/filepath"

// BaseDirs is the fixed directory tree every scaffolded project receives,
// relative to the project root. Creation is idempotent.
var BaseDirs = []string{
	filepath.Join("src", "assets", "fonts"),
	filepath.Join("src", "assets", "images"),
	filepath.Join("src", "components", "common"),
	filepath.Join("src", "components", "ui"),
	filepath.Join("src", "constants"),
	filepath.Join("src", "context"),
	filepath.Join("src", "features", "auth"),
	filepath.Join("src", "features", "home"),
	filepath.Join("src", "features", "settings"),
	filepath.Join("src", "hooks"),
	filepath.Join("src", "i18n"),
	filepath.Join("src", "i18n", "locales"),
	filepath.Join("src", "navigation"),
	filepath.Join("src", "screens"),
	filepath.Join("src", "services", "api"),
	filepath.Join("src", "services", "notifications"),
	filepath.Join("src", "store"),
	filepath.Join("src", "theme"),
	filepath.Join("src", "types"),
	filepath.Join("src", "utils"),
}
