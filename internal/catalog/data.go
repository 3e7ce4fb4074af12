package catalog

import "scent-match/internal/domain"

// personaTable es el catalogo autorado de 30 perfumes-persona. Los prefijos
// de ID codifican la familia dominante (CT citrus, FL floral, WD woody,
// MS musky, FR fruity, SP spicy) y el sufijo numerico es el lote de autoria.
// Esta tabla es estatica: se carga una vez y nunca muta en runtime.
var personaTable = []domain.PersonaRecord{
	{
		ID: "CT-2201101", Name: "Amanecer de Azahar",
		Description: "Citrico luminoso de primera hora, optimista y sin peso.",
		Traits:      domain.TraitVector{Sensuality: 3, Cuteness: 6, Charisma: 5, Darkness: 1, Freshness: 10, Elegance: 5, Freedom: 8, Luxury: 3, Purity: 9, Uniqueness: 4},
		Categories:  domain.CategoryVector{Citrus: 10, Floral: 4, Woody: 2, Musky: 1, Fruity: 5, Spicy: 1},
		Keywords:          []string{"luminoso", "limpio", "energico"},
		ImageAssociations: []string{"ventana al amanecer", "camisa blanca"},
		PrimaryColor: "#FFD34D", SecondaryColor: "#FFF7DC", Palette: []string{"#FFD34D", "#FFF7DC", "#A8D8B9"},
	},
	{
		ID: "CT-2201102", Name: "Brisa de Pomelo",
		Description: "Pomelo amargo con fondo verde, deportivo y directo.",
		Traits:      domain.TraitVector{Sensuality: 2, Cuteness: 4, Charisma: 6, Darkness: 1, Freshness: 9, Elegance: 4, Freedom: 9, Luxury: 2, Purity: 8, Uniqueness: 5},
		Categories:  domain.CategoryVector{Citrus: 9, Floral: 2, Woody: 3, Musky: 2, Fruity: 4, Spicy: 2},
		Keywords:          []string{"amargo", "verde", "agil"},
		ImageAssociations: []string{"cancha al aire libre", "agua con hielo"},
		PrimaryColor: "#FF8C69", SecondaryColor: "#FFEFD5", Palette: []string{"#FF8C69", "#FFEFD5", "#7EC850"},
	},
	{
		ID: "CT-2201103", Name: "Jardin de Bergamota",
		Description: "Bergamota pulida sobre te blanco, citrico de sastreria.",
		Traits:      domain.TraitVector{Sensuality: 4, Cuteness: 3, Charisma: 6, Darkness: 2, Freshness: 8, Elegance: 9, Freedom: 5, Luxury: 7, Purity: 7, Uniqueness: 5},
		Categories:  domain.CategoryVector{Citrus: 9, Floral: 5, Woody: 4, Musky: 2, Fruity: 3, Spicy: 1},
		Keywords:          []string{"pulido", "clasico", "sereno"},
		ImageAssociations: []string{"traje de lino", "taza de te"},
		PrimaryColor: "#C9D96A", SecondaryColor: "#F4F6E6", Palette: []string{"#C9D96A", "#F4F6E6", "#8FA05A"},
	},
	{
		ID: "CT-2201104", Name: "Sol de Mandarina",
		Description: "Mandarina dulce y risuena, el mas juguueton de la familia.",
		Traits:      domain.TraitVector{Sensuality: 2, Cuteness: 9, Charisma: 5, Darkness: 1, Freshness: 8, Elegance: 3, Freedom: 7, Luxury: 2, Purity: 8, Uniqueness: 4},
		Categories:  domain.CategoryVector{Citrus: 9, Floral: 3, Woody: 1, Musky: 1, Fruity: 7, Spicy: 1},
		Keywords:          []string{"dulce", "alegre", "infantil"},
		ImageAssociations: []string{"globos naranjas", "picnic"},
		PrimaryColor: "#FFA94D", SecondaryColor: "#FFE8CC", Palette: []string{"#FFA94D", "#FFE8CC", "#FFD43B"},
	},
	{
		ID: "CT-2201105", Name: "Verbena de Mediodia",
		Description: "Verbena herbal bajo sol vertical, nitida y algo terca.",
		Traits:      domain.TraitVector{Sensuality: 3, Cuteness: 3, Charisma: 7, Darkness: 2, Freshness: 9, Elegance: 6, Freedom: 8, Luxury: 4, Purity: 7, Uniqueness: 6},
		Categories:  domain.CategoryVector{Citrus: 8, Floral: 3, Woody: 3, Musky: 1, Fruity: 3, Spicy: 3},
		Keywords:          []string{"herbal", "nitido", "firme"},
		ImageAssociations: []string{"plaza al mediodia", "hojas trituradas"},
		PrimaryColor: "#9ACD32", SecondaryColor: "#F0FFF0", Palette: []string{"#9ACD32", "#F0FFF0", "#FFE066"},
	},
	{
		ID: "FL-2201201", Name: "Peonia de Seda",
		Description: "Peonia rosada y suave, romantica sin llegar a empalagar.",
		Traits:      domain.TraitVector{Sensuality: 5, Cuteness: 8, Charisma: 4, Darkness: 1, Freshness: 6, Elegance: 7, Freedom: 4, Luxury: 5, Purity: 8, Uniqueness: 3},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 10, Woody: 2, Musky: 3, Fruity: 5, Spicy: 1},
		Keywords:          []string{"romantico", "suave", "rosado"},
		ImageAssociations: []string{"ramo de peonias", "vestido de gasa"},
		PrimaryColor: "#F7A8B8", SecondaryColor: "#FDECEF", Palette: []string{"#F7A8B8", "#FDECEF", "#D9A7C7"},
	},
	{
		ID: "FL-2201202", Name: "Velo de Jazmin",
		Description: "Jazmin nocturno envolvente, floral con intencion.",
		Traits:      domain.TraitVector{Sensuality: 8, Cuteness: 3, Charisma: 7, Darkness: 4, Freshness: 4, Elegance: 8, Freedom: 5, Luxury: 7, Purity: 4, Uniqueness: 6},
		Categories:  domain.CategoryVector{Citrus: 2, Floral: 9, Woody: 3, Musky: 5, Fruity: 2, Spicy: 2},
		Keywords:          []string{"nocturno", "envolvente", "intenso"},
		ImageAssociations: []string{"balcon de noche", "chal de seda"},
		PrimaryColor: "#E8E4D8", SecondaryColor: "#2E2A3B", Palette: []string{"#E8E4D8", "#2E2A3B", "#B08BBB"},
	},
	{
		ID: "FL-2201203", Name: "Rosa de Medianoche",
		Description: "Rosa oscura con fondo de vino, dramatica y segura.",
		Traits:      domain.TraitVector{Sensuality: 9, Cuteness: 2, Charisma: 8, Darkness: 7, Freshness: 2, Elegance: 8, Freedom: 4, Luxury: 8, Purity: 3, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 9, Woody: 4, Musky: 4, Fruity: 3, Spicy: 4},
		Keywords:          []string{"dramatico", "profundo", "magnetico"},
		ImageAssociations: []string{"copa de vino tinto", "terciopelo granate"},
		PrimaryColor: "#7B1E3B", SecondaryColor: "#1B1B1F", Palette: []string{"#7B1E3B", "#1B1B1F", "#C48793"},
	},
	{
		ID: "FL-2201204", Name: "Lirio de Porcelana",
		Description: "Lirio blanco frio, pulcro hasta la ceremonia.",
		Traits:      domain.TraitVector{Sensuality: 4, Cuteness: 4, Charisma: 5, Darkness: 2, Freshness: 7, Elegance: 9, Freedom: 3, Luxury: 6, Purity: 10, Uniqueness: 4},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 9, Woody: 2, Musky: 3, Fruity: 1, Spicy: 1},
		Keywords:          []string{"pulcro", "ceremonial", "frio"},
		ImageAssociations: []string{"mantel blanco", "porcelana"},
		PrimaryColor: "#F8F8FF", SecondaryColor: "#C8D6E5", Palette: []string{"#F8F8FF", "#C8D6E5", "#9FB3C8"},
	},
	{
		ID: "FL-2201205", Name: "Magnolia Urbana",
		Description: "Magnolia cremosa con asfalto tibio, floral moderna.",
		Traits:      domain.TraitVector{Sensuality: 6, Cuteness: 5, Charisma: 7, Darkness: 3, Freshness: 5, Elegance: 7, Freedom: 6, Luxury: 6, Purity: 5, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 8, Woody: 4, Musky: 4, Fruity: 3, Spicy: 2},
		Keywords:          []string{"moderno", "cremoso", "versatil"},
		ImageAssociations: []string{"azotea al atardecer", "abrigo camel"},
		PrimaryColor: "#EED9C4", SecondaryColor: "#6D6875", Palette: []string{"#EED9C4", "#6D6875", "#B5838D"},
	},
	{
		ID: "WD-2201301", Name: "Bosque de Medianoche",
		Description: "Maderas humedas y resina, silencio denso de bosque.",
		Traits:      domain.TraitVector{Sensuality: 6, Cuteness: 1, Charisma: 7, Darkness: 9, Freshness: 3, Elegance: 6, Freedom: 5, Luxury: 6, Purity: 3, Uniqueness: 8},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 2, Woody: 10, Musky: 5, Fruity: 1, Spicy: 4},
		Keywords:          []string{"denso", "resinoso", "misterioso"},
		ImageAssociations: []string{"pinar de noche", "abrigo de lana oscura"},
		PrimaryColor: "#1F3D2B", SecondaryColor: "#0D1117", Palette: []string{"#1F3D2B", "#0D1117", "#5C4B3B"},
	},
	{
		ID: "WD-2201302", Name: "Cedro de Invierno",
		Description: "Cedro seco y recto, sobrio como un despacho antiguo.",
		Traits:      domain.TraitVector{Sensuality: 4, Cuteness: 1, Charisma: 6, Darkness: 5, Freshness: 4, Elegance: 8, Freedom: 3, Luxury: 7, Purity: 5, Uniqueness: 5},
		Categories:  domain.CategoryVector{Citrus: 2, Floral: 1, Woody: 9, Musky: 3, Fruity: 1, Spicy: 3},
		Keywords:          []string{"sobrio", "seco", "formal"},
		ImageAssociations: []string{"biblioteca", "escritorio de madera"},
		PrimaryColor: "#6B4F3A", SecondaryColor: "#D7CCC8", Palette: []string{"#6B4F3A", "#D7CCC8", "#37474F"},
	},
	{
		ID: "WD-2201303", Name: "Sandalo Errante",
		Description: "Sandalo lechoso de viaje largo, calido y sin prisa.",
		Traits:      domain.TraitVector{Sensuality: 7, Cuteness: 2, Charisma: 5, Darkness: 4, Freshness: 3, Elegance: 6, Freedom: 9, Luxury: 5, Purity: 5, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 2, Floral: 3, Woody: 9, Musky: 6, Fruity: 2, Spicy: 2},
		Keywords:          []string{"calido", "lechoso", "nomada"},
		ImageAssociations: []string{"mochila de cuero", "carretera al atardecer"},
		PrimaryColor: "#C19A6B", SecondaryColor: "#F1E3D3", Palette: []string{"#C19A6B", "#F1E3D3", "#8D6E63"},
	},
	{
		ID: "WD-2201304", Name: "Vetiver de Niebla",
		Description: "Vetiver terroso entre niebla, introspectivo y gris.",
		Traits:      domain.TraitVector{Sensuality: 5, Cuteness: 1, Charisma: 4, Darkness: 7, Freshness: 5, Elegance: 7, Freedom: 6, Luxury: 4, Purity: 4, Uniqueness: 8},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 1, Woody: 9, Musky: 4, Fruity: 1, Spicy: 2},
		Keywords:          []string{"terroso", "introspectivo", "brumoso"},
		ImageAssociations: []string{"muelle con niebla", "gabardina gris"},
		PrimaryColor: "#7D8471", SecondaryColor: "#B8BDB5", Palette: []string{"#7D8471", "#B8BDB5", "#4A4E45"},
	},
	{
		ID: "WD-2201305", Name: "Raiz de Ambar",
		Description: "Maderas ambaradas y dulzor fosil, lujo sin estreno.",
		Traits:      domain.TraitVector{Sensuality: 8, Cuteness: 2, Charisma: 8, Darkness: 6, Freshness: 2, Elegance: 8, Freedom: 4, Luxury: 10, Purity: 3, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 2, Woody: 8, Musky: 6, Fruity: 2, Spicy: 5},
		Keywords:          []string{"ambarado", "opulento", "antiguo"},
		ImageAssociations: []string{"anillo heredado", "salon con chimenea"},
		PrimaryColor: "#B8860B", SecondaryColor: "#3B2F2F", Palette: []string{"#B8860B", "#3B2F2F", "#E0C097"},
	},
	{
		ID: "MS-2201401", Name: "Almizcle de Seda",
		Description: "Almizcle blanco de piel limpia, intimo y minimalista.",
		Traits:      domain.TraitVector{Sensuality: 7, Cuteness: 5, Charisma: 3, Darkness: 2, Freshness: 5, Elegance: 7, Freedom: 4, Luxury: 5, Purity: 8, Uniqueness: 3},
		Categories:  domain.CategoryVector{Citrus: 2, Floral: 4, Woody: 3, Musky: 10, Fruity: 2, Spicy: 1},
		Keywords:          []string{"intimo", "limpio", "minimal"},
		ImageAssociations: []string{"sabanas blancas", "cuello de sueter"},
		PrimaryColor: "#EDE7E3", SecondaryColor: "#CDB8A8", Palette: []string{"#EDE7E3", "#CDB8A8", "#A89F91"},
	},
	{
		ID: "MS-2201402", Name: "Piel de Luna",
		Description: "Almizcle animal suavizado, sensual en voz baja.",
		Traits:      domain.TraitVector{Sensuality: 9, Cuteness: 2, Charisma: 6, Darkness: 5, Freshness: 2, Elegance: 7, Freedom: 5, Luxury: 7, Purity: 3, Uniqueness: 6},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 3, Woody: 5, Musky: 9, Fruity: 2, Spicy: 3},
		Keywords:          []string{"sensual", "animal", "nocturno"},
		ImageAssociations: []string{"luz de luna", "espalda descubierta"},
		PrimaryColor: "#C0B7C9", SecondaryColor: "#2B2433", Palette: []string{"#C0B7C9", "#2B2433", "#8E7F9E"},
	},
	{
		ID: "MS-2201403", Name: "Bruma Blanca",
		Description: "Bruma jabonosa casi transparente, calma absoluta.",
		Traits:      domain.TraitVector{Sensuality: 3, Cuteness: 6, Charisma: 2, Darkness: 1, Freshness: 7, Elegance: 5, Freedom: 5, Luxury: 3, Purity: 10, Uniqueness: 2},
		Categories:  domain.CategoryVector{Citrus: 4, Floral: 4, Woody: 2, Musky: 9, Fruity: 2, Spicy: 1},
		Keywords:          []string{"jabonoso", "etereo", "calmo"},
		ImageAssociations: []string{"toalla tibia", "niebla matinal"},
		PrimaryColor: "#F5F5F5", SecondaryColor: "#DDE6ED", Palette: []string{"#F5F5F5", "#DDE6ED", "#C3CBD6"},
	},
	{
		ID: "MS-2201404", Name: "Terciopelo Gris",
		Description: "Almizcle empolvado con iris, distante y elegante.",
		Traits:      domain.TraitVector{Sensuality: 6, Cuteness: 3, Charisma: 6, Darkness: 5, Freshness: 3, Elegance: 10, Freedom: 3, Luxury: 8, Purity: 5, Uniqueness: 6},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 5, Woody: 4, Musky: 8, Fruity: 1, Spicy: 2},
		Keywords:          []string{"empolvado", "distante", "refinado"},
		ImageAssociations: []string{"guantes grises", "galeria de arte"},
		PrimaryColor: "#9E9E9E", SecondaryColor: "#E8E6E1", Palette: []string{"#9E9E9E", "#E8E6E1", "#6C6A75"},
	},
	{
		ID: "MS-2201405", Name: "Eco de Algodon",
		Description: "Almizcle de ropa recien lavada, cotidiano y amable.",
		Traits:      domain.TraitVector{Sensuality: 4, Cuteness: 7, Charisma: 3, Darkness: 1, Freshness: 6, Elegance: 4, Freedom: 5, Luxury: 2, Purity: 9, Uniqueness: 2},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 3, Woody: 2, Musky: 8, Fruity: 3, Spicy: 1},
		Keywords:          []string{"cotidiano", "amable", "tibio"},
		ImageAssociations: []string{"ropa tendida", "sueter claro"},
		PrimaryColor: "#FAF3E0", SecondaryColor: "#B5C7D3", Palette: []string{"#FAF3E0", "#B5C7D3", "#E3D5CA"},
	},
	{
		ID: "FR-2201501", Name: "Durazno de Verano",
		Description: "Durazno jugoso con piel aterciopelada, carinoso y solar.",
		Traits:      domain.TraitVector{Sensuality: 5, Cuteness: 8, Charisma: 5, Darkness: 1, Freshness: 7, Elegance: 4, Freedom: 6, Luxury: 3, Purity: 7, Uniqueness: 3},
		Categories:  domain.CategoryVector{Citrus: 4, Floral: 4, Woody: 1, Musky: 2, Fruity: 10, Spicy: 1},
		Keywords:          []string{"jugoso", "solar", "carinoso"},
		ImageAssociations: []string{"frutero de verano", "vestido amarillo"},
		PrimaryColor: "#FFB88C", SecondaryColor: "#FFF1E0", Palette: []string{"#FFB88C", "#FFF1E0", "#FF9A76"},
	},
	{
		ID: "FR-2201502", Name: "Higo Silvestre",
		Description: "Higo verde con hoja y leche, frutal con sombra vegetal.",
		Traits:      domain.TraitVector{Sensuality: 6, Cuteness: 4, Charisma: 6, Darkness: 3, Freshness: 6, Elegance: 6, Freedom: 7, Luxury: 5, Purity: 5, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 3, Woody: 5, Musky: 3, Fruity: 8, Spicy: 1},
		Keywords:          []string{"vegetal", "mediterraneo", "curioso"},
		ImageAssociations: []string{"higuera", "patio con sombra"},
		PrimaryColor: "#6F8F4F", SecondaryColor: "#EDE4D3", Palette: []string{"#6F8F4F", "#EDE4D3", "#8E5B3C"},
	},
	{
		ID: "FR-2201503", Name: "Cereza Negra",
		Description: "Cereza licorosa con almendra amarga, dulce con filo.",
		Traits:      domain.TraitVector{Sensuality: 8, Cuteness: 4, Charisma: 7, Darkness: 6, Freshness: 2, Elegance: 6, Freedom: 5, Luxury: 7, Purity: 2, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 3, Woody: 3, Musky: 3, Fruity: 9, Spicy: 4},
		Keywords:          []string{"licoroso", "goloso", "provocador"},
		ImageAssociations: []string{"labial oscuro", "bar con poca luz"},
		PrimaryColor: "#4A0E1C", SecondaryColor: "#1A1A1D", Palette: []string{"#4A0E1C", "#1A1A1D", "#9B2242"},
	},
	{
		ID: "FR-2201504", Name: "Pera de Cristal",
		Description: "Pera acuosa y transparente, frutal de trazo fino.",
		Traits:      domain.TraitVector{Sensuality: 3, Cuteness: 7, Charisma: 4, Darkness: 1, Freshness: 8, Elegance: 6, Freedom: 5, Luxury: 4, Purity: 8, Uniqueness: 4},
		Categories:  domain.CategoryVector{Citrus: 5, Floral: 4, Woody: 1, Musky: 2, Fruity: 8, Spicy: 1},
		Keywords:          []string{"acuoso", "transparente", "ligero"},
		ImageAssociations: []string{"copa de cristal", "manana de primavera"},
		PrimaryColor: "#D4E7C5", SecondaryColor: "#F7FBF1", Palette: []string{"#D4E7C5", "#F7FBF1", "#BFD8B8"},
	},
	{
		ID: "FR-2201505", Name: "Frambuesa al Sol",
		Description: "Frambuesa chispeante con rosa, vivaz y conversadora.",
		Traits:      domain.TraitVector{Sensuality: 4, Cuteness: 8, Charisma: 7, Darkness: 1, Freshness: 6, Elegance: 4, Freedom: 7, Luxury: 3, Purity: 6, Uniqueness: 5},
		Categories:  domain.CategoryVector{Citrus: 3, Floral: 5, Woody: 1, Musky: 2, Fruity: 9, Spicy: 2},
		Keywords:          []string{"chispeante", "vivaz", "social"},
		ImageAssociations: []string{"feria de verano", "limonada rosa"},
		PrimaryColor: "#E0479E", SecondaryColor: "#FFE3F1", Palette: []string{"#E0479E", "#FFE3F1", "#FF87B2"},
	},
	{
		ID: "SP-2201601", Name: "Canela de Bronce",
		Description: "Canela tostada sobre ambar, abrigo especiado clasico.",
		Traits:      domain.TraitVector{Sensuality: 7, Cuteness: 3, Charisma: 7, Darkness: 5, Freshness: 2, Elegance: 6, Freedom: 4, Luxury: 7, Purity: 3, Uniqueness: 5},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 2, Woody: 5, Musky: 3, Fruity: 3, Spicy: 10},
		Keywords:          []string{"tostado", "abrigado", "clasico"},
		ImageAssociations: []string{"pan de especias", "bufanda terracota"},
		PrimaryColor: "#B0612B", SecondaryColor: "#F3E0C8", Palette: []string{"#B0612B", "#F3E0C8", "#7A3B1E"},
	},
	{
		ID: "SP-2201602", Name: "Pimienta Rosa",
		Description: "Pimienta rosada chispeante, especiada sin solemnidad.",
		Traits:      domain.TraitVector{Sensuality: 5, Cuteness: 6, Charisma: 8, Darkness: 2, Freshness: 6, Elegance: 5, Freedom: 8, Luxury: 4, Purity: 5, Uniqueness: 7},
		Categories:  domain.CategoryVector{Citrus: 4, Floral: 4, Woody: 2, Musky: 2, Fruity: 4, Spicy: 8},
		Keywords:          []string{"chispeante", "ironico", "agil"},
		ImageAssociations: []string{"fiesta en terraza", "blazer rosa viejo"},
		PrimaryColor: "#E4717A", SecondaryColor: "#FBEAEA", Palette: []string{"#E4717A", "#FBEAEA", "#C94C5C"},
	},
	{
		ID: "SP-2201603", Name: "Cardamomo Nocturno",
		Description: "Cardamomo frio con cuero, especia de bar clandestino.",
		Traits:      domain.TraitVector{Sensuality: 8, Cuteness: 1, Charisma: 9, Darkness: 8, Freshness: 3, Elegance: 7, Freedom: 6, Luxury: 8, Purity: 2, Uniqueness: 9},
		Categories:  domain.CategoryVector{Citrus: 2, Floral: 1, Woody: 6, Musky: 4, Fruity: 1, Spicy: 9},
		Keywords:          []string{"clandestino", "cuero", "electrico"},
		ImageAssociations: []string{"bar sin cartel", "chaqueta de cuero"},
		PrimaryColor: "#3E4C3A", SecondaryColor: "#14110F", Palette: []string{"#3E4C3A", "#14110F", "#A68A64"},
	},
	{
		ID: "SP-2201604", Name: "Jengibre de Fuego",
		Description: "Jengibre ardiente y citrico, impulso puro.",
		Traits:      domain.TraitVector{Sensuality: 5, Cuteness: 3, Charisma: 8, Darkness: 3, Freshness: 7, Elegance: 4, Freedom: 9, Luxury: 3, Purity: 4, Uniqueness: 8},
		Categories:  domain.CategoryVector{Citrus: 6, Floral: 1, Woody: 3, Musky: 1, Fruity: 3, Spicy: 9},
		Keywords:          []string{"ardiente", "impulsivo", "directo"},
		ImageAssociations: []string{"cocina en llamas", "zapatillas rojas"},
		PrimaryColor: "#E25822", SecondaryColor: "#FFD8B5", Palette: []string{"#E25822", "#FFD8B5", "#B23A1D"},
	},
	{
		ID: "SP-2201605", Name: "Clavo de Terracota",
		Description: "Clavo de olor y arcilla calida, artesanal y terco.",
		Traits:      domain.TraitVector{Sensuality: 6, Cuteness: 2, Charisma: 5, Darkness: 6, Freshness: 2, Elegance: 5, Freedom: 6, Luxury: 4, Purity: 4, Uniqueness: 8},
		Categories:  domain.CategoryVector{Citrus: 1, Floral: 2, Woody: 6, Musky: 3, Fruity: 2, Spicy: 8},
		Keywords:          []string{"artesanal", "terroso", "obstinado"},
		ImageAssociations: []string{"taller de ceramica", "manos con arcilla"},
		PrimaryColor: "#A0522D", SecondaryColor: "#EAD7C2", Palette: []string{"#A0522D", "#EAD7C2", "#6B3A23"},
	},
}
