// Package dashboard implements the admin dashboard's filter and search
// logic as pure functions over an in-memory snapshot. Filtered lists and
// status counts are derived on every call, never stored, so they cannot
// drift from the records they were computed over.
package dashboard

import (
	"strings"

	"github.com/clearskyva/backoffice/internal/entity"
)

// TabAll is the status tab that disables status filtering.
const TabAll = "all"

// Testimonial status tabs. Testimonials carry flags rather than a status
// column, so the tabs map onto flag combinations.
const (
	TabPending  = "pending"
	TabApproved = "approved"
	TabFeatured = "featured"
)

// Query is the operator's current filter state: a free-text search and an
// exclusive status tab.
type Query struct {
	Search    string `json:"search" query:"search"`
	StatusTab string `json:"status_tab" query:"status"`
}

// InquiryView is the filtered inquiry list together with per-status counts
// over the full snapshot.
type InquiryView struct {
	Records      []entity.Inquiry `json:"records"`
	StatusCounts map[string]int   `json:"status_counts"`
}

// TestimonialView is the filtered testimonial list together with per-tab
// counts over the full snapshot.
type TestimonialView struct {
	Records      []entity.Testimonial `json:"records"`
	StatusCounts map[string]int       `json:"status_counts"`
}

// FilterInquiries applies the query to a snapshot of inquiries. Search is
// a case-insensitive substring match over name, email, company and
// message; the status tab is exclusive with TabAll as passthrough. Counts
// always cover the whole snapshot so tab badges stay stable while
// searching.
func FilterInquiries(records []entity.Inquiry, q Query) InquiryView {
	view := InquiryView{
		Records:      make([]entity.Inquiry, 0, len(records)),
		StatusCounts: make(map[string]int),
	}

	needle := normalize(q.Search)
	for _, r := range records {
		view.StatusCounts[r.Status]++
		view.StatusCounts[TabAll]++

		if q.StatusTab != "" && q.StatusTab != TabAll && r.Status != q.StatusTab {
			continue
		}
		if needle != "" && !matchesInquiry(r, needle) {
			continue
		}
		view.Records = append(view.Records, r)
	}
	return view
}

// FilterTestimonials applies the query to a snapshot of testimonials.
// Search covers client name, company, testimonial text and service type.
func FilterTestimonials(records []entity.Testimonial, q Query) TestimonialView {
	view := TestimonialView{
		Records:      make([]entity.Testimonial, 0, len(records)),
		StatusCounts: make(map[string]int),
	}

	needle := normalize(q.Search)
	for _, r := range records {
		view.StatusCounts[testimonialTab(r)]++
		if r.IsFeatured {
			// featured rows are approved too; count them under both tabs
			view.StatusCounts[TabApproved]++
		}
		view.StatusCounts[TabAll]++

		if q.StatusTab != "" && q.StatusTab != TabAll && !matchesTab(r, q.StatusTab) {
			continue
		}
		if needle != "" && !matchesTestimonial(r, needle) {
			continue
		}
		view.Records = append(view.Records, r)
	}
	return view
}

func matchesInquiry(r entity.Inquiry, needle string) bool {
	return contains(r.Name, needle) ||
		contains(r.Email, needle) ||
		containsPtr(r.CompanyName, needle) ||
		containsPtr(r.Message, needle)
}

func matchesTestimonial(r entity.Testimonial, needle string) bool {
	return contains(r.ClientName, needle) ||
		containsPtr(r.Company, needle) ||
		contains(r.Text, needle) ||
		contains(r.ServiceType, needle)
}

func testimonialTab(r entity.Testimonial) string {
	switch {
	case r.IsFeatured:
		return TabFeatured
	case r.IsApproved:
		return TabApproved
	default:
		return TabPending
	}
}

func matchesTab(r entity.Testimonial, tab string) bool {
	switch tab {
	case TabPending:
		return !r.IsApproved
	case TabApproved:
		return r.IsApproved
	case TabFeatured:
		return r.IsFeatured
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func containsPtr(haystack *string, needle string) bool {
	return haystack != nil && contains(*haystack, needle)
}
