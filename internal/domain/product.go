package domain

// Product is a catalog item. IDs are opaque strings assigned at creation and
// never change afterwards.
type Product struct {
	ID          string   `json:"_id" bson:"_id"`
	Description string   `json:"description" bson:"description" validate:"required"`
	ImgThumb    string   `json:"imgThumb" bson:"imgThumb" validate:"required,url"`
	Img         string   `json:"img" bson:"img" validate:"required,url"`
	Link        string   `json:"link,omitempty" bson:"link,omitempty" validate:"omitempty,url"`
	UserID      string   `json:"userId" bson:"userId" validate:"required"`
	UserName    string   `json:"userName" bson:"userName" validate:"required"`
	UserLink    string   `json:"userLink,omitempty" bson:"userLink,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags" bson:"tags"`
}

// ProductPatch is the merge-patch shape for product edits: every field is an
// optional override, so "only supplied fields change" holds with compile-time
// field coverage instead of reflective key iteration.
type ProductPatch struct {
	Description Field[string]   `json:"description"`
	ImgThumb    Field[string]   `json:"imgThumb"`
	Img         Field[string]   `json:"img"`
	Link        Field[string]   `json:"link"`
	UserID      Field[string]   `json:"userId"`
	UserName    Field[string]   `json:"userName"`
	UserLink    Field[string]   `json:"userLink"`
	Tags        Field[[]string] `json:"tags"`
}

// ApplyTo merges the patch into product. The ID is not patchable.
func (p ProductPatch) ApplyTo(product *Product) {
	p.Description.Apply(&product.Description)
	p.ImgThumb.Apply(&product.ImgThumb)
	p.Img.Apply(&product.Img)
	p.Link.Apply(&product.Link)
	p.UserID.Apply(&product.UserID)
	p.UserName.Apply(&product.UserName)
	p.UserLink.Apply(&product.UserLink)
	p.Tags.Apply(&product.Tags)
}
