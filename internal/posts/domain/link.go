package domain

// DocumentRef identifies a CMS document independently of its type.
type DocumentRef struct {
	ID   string
	UID  string
	Type string
}

// ResolveLink maps a document to its canonical site path. Unknown types
// and post documents without a UID resolve to the site root.
func ResolveLink(doc DocumentRef) string {
	if doc.Type == DocumentType && doc.UID != "" {
		return PostPath(doc.UID)
	}
	return "/"
}

// PostPath is the canonical path of a post page.
func PostPath(uid string) string {
	return "/post/" + uid
}
