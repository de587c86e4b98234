package pagination

// PageDefaultLimit is the page size used when the caller does not specify one
const PageDefaultLimit = 10

// PageMaxLimit is the maximum allowed page size
const PageMaxLimit = 100
