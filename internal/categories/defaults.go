package categories

// Default returns the built-in category declarations in display order.
func Default() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg", ".ico", ".tiff", ".tif"}},
		{Name: "Videos", Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".mpeg", ".mpg"}},
		{Name: "Documents", Extensions: []string{
			".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".rtf",
			".odt", ".ods", ".odp", ".csv", ".md", ".tex",
		}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a", ".opus"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso"}},
		{Name: "Executables", Extensions: []string{".exe", ".msi", ".bat", ".cmd", ".sh", ".app", ".dmg"}},
		{Name: "Code", Extensions: []string{
			".py", ".js", ".ts", ".html", ".css", ".json", ".xml", ".yaml", ".yml",
			".java", ".c", ".cpp", ".h", ".cs", ".go", ".rs", ".rb", ".php",
		}},
	}
}
