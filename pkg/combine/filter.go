package combine

import (
	"strings"

	"go.uber.org/zap"
)

// defaultExcludedDirs are the directory names excluded on every run unless a
// matching file is reached through none of them. Matching is case-insensitive.
var defaultExcludedDirs = []string{"vendor", "node_modules", "build", "dist", "cache"}

// binaryExtensions is the fixed set of filename extensions treated as
// non-text by default. Keys are lower-cased and include the leading period.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".tiff": true, ".webp": true, ".svgz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".xz": true,
	".7z": true, ".rar": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".obj": true, ".o": true, ".a": true, ".lib": true,
	".class": true, ".jar": true, ".war": true, ".pyc": true, ".wasm": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flac": true, ".ogg": true, ".wav": true, ".mkv": true,
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true, ".eot": true,
	".db": true, ".sqlite": true, ".iso": true, ".dmg": true,
}

// Rules is the process-scoped exclusion policy, constructed once per run.
// Dot-directories are always excluded regardless of the toggles; only
// dot-files are toggle-controlled.
type Rules struct {
	excludedDirs       map[string]bool
	IncludeDotFiles    bool
	IncludeBinaryFiles bool
}

// NewRules builds the rule set from the default excluded directory names
// unioned with extraDirs.
func NewRules(extraDirs []string, includeDotFiles, includeBinaryFiles bool) *Rules {
	excluded := make(map[string]bool, len(defaultExcludedDirs)+len(extraDirs))
	for _, name := range defaultExcludedDirs {
		excluded[strings.ToLower(name)] = true
	}
	for _, name := range extraDirs {
		name = strings.TrimSpace(name)
		if name != "" {
			excluded[strings.ToLower(name)] = true
		}
	}
	return &Rules{
		excludedDirs:       excluded,
		IncludeDotFiles:    includeDotFiles,
		IncludeBinaryFiles: includeBinaryFiles,
	}
}

// Accept decides whether rec survives the exclusion policy. The rules are
// checked in a fixed order so the verbose diagnostic names the first matching
// rule; the accept/reject outcome itself does not depend on the order.
func (r *Rules) Accept(rec FileRecord, logger *zap.Logger) bool {
	segments := strings.Split(rec.RelativePath, "/")
	dirs := segments[:len(segments)-1]
	name := segments[len(segments)-1]

	// Dot-directories are excluded unconditionally.
	for _, seg := range dirs {
		if strings.HasPrefix(seg, ".") {
			logger.Debug("Excluding file under dot directory",
				zap.String("file", rec.RelativePath),
				zap.String("directory", seg))
			return false
		}
	}

	if strings.HasPrefix(name, ".") && !r.IncludeDotFiles {
		logger.Debug("Excluding dot file", zap.String("file", rec.RelativePath))
		return false
	}

	if binaryExtensions[rec.Extension] && !r.IncludeBinaryFiles {
		logger.Debug("Excluding binary file",
			zap.String("file", rec.RelativePath),
			zap.String("extension", rec.Extension))
		return false
	}

	for _, seg := range dirs {
		if r.excludedDirs[strings.ToLower(seg)] {
			logger.Debug("Excluding file under excluded directory",
				zap.String("file", rec.RelativePath),
				zap.String("directory", seg))
			return false
		}
	}

	return true
}

// Filter applies the rule set to every record, returning the accepted subset
// and the number of records excluded.
func Filter(records []FileRecord, rules *Rules, logger *zap.Logger) ([]FileRecord, int) {
	accepted := make([]FileRecord, 0, len(records))
	for _, rec := range records {
		if rules.Accept(rec, logger) {
			accepted = append(accepted, rec)
		}
	}
	return accepted, len(records) - len(accepted)
}
