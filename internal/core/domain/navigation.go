package domain

// View identifies which of the three console screens is active.
type View int

const (
	ViewSellers View = iota
	ViewProducts
	ViewCampaigns
)

func (v View) String() string {
	switch v {
	case ViewProducts:
		return "products"
	case ViewCampaigns:
		return "campaigns"
	default:
		return "sellers"
	}
}

// Navigation is the console's drill-down position. The three
// implementations are the only states: a product can only be held
// together with its seller.
type Navigation interface {
	View() View
	navigation()
}

// NavBrowsing means no seller is selected.
type NavBrowsing struct{}

// NavSeller means a seller is selected and its products are listed.
type NavSeller struct {
	Seller Seller
}

// NavProduct means a product of Seller is selected and its campaigns are
// managed.
type NavProduct struct {
	Seller  Seller
	Product Product
}

func (NavBrowsing) View() View { return ViewSellers }
func (NavSeller) View() View   { return ViewProducts }
func (NavProduct) View() View  { return ViewCampaigns }

func (NavBrowsing) navigation() {}
func (NavSeller) navigation()   {}
func (NavProduct) navigation()  {}

// SelectSeller moves to the product list of s, dropping any selected product.
func SelectSeller(_ Navigation, s Seller) Navigation {
	return NavSeller{Seller: s}
}

// SelectProduct moves to the campaigns of p. A seller must be selected.
func SelectProduct(n Navigation, p Product) (Navigation, error) {
	seller, ok := SelectedSeller(n)
	if !ok {
		return n, ErrNoSellerSelected
	}
	return NavProduct{Seller: seller, Product: p}, nil
}

// BackToSellers clears both selections.
func BackToSellers(Navigation) Navigation {
	return NavBrowsing{}
}

// BackToProducts clears the selected product only.
func BackToProducts(n Navigation) Navigation {
	if seller, ok := SelectedSeller(n); ok {
		return NavSeller{Seller: seller}
	}
	return NavBrowsing{}
}

// ReplaceSeller swaps in a refreshed copy of the selected seller. It is a
// no-op when s is not the selected seller.
func ReplaceSeller(n Navigation, s Seller) Navigation {
	switch nav := n.(type) {
	case NavSeller:
		if nav.Seller.ID == s.ID {
			return NavSeller{Seller: s}
		}
	case NavProduct:
		if nav.Seller.ID == s.ID {
			return NavProduct{Seller: s, Product: nav.Product}
		}
	}
	return n
}

// SelectedSeller returns the selected seller, if any.
func SelectedSeller(n Navigation) (Seller, bool) {
	switch nav := n.(type) {
	case NavSeller:
		return nav.Seller, true
	case NavProduct:
		return nav.Seller, true
	}
	return Seller{}, false
}

// SelectedProduct returns the selected product, if any.
func SelectedProduct(n Navigation) (Product, bool) {
	if nav, ok := n.(NavProduct); ok {
		return nav.Product, true
	}
	return Product{}, false
}
