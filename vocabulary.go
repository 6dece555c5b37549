package vnfeed

// Static vocabulary of the blog's post template. Upstream markup changes are
// absorbed here.

// BoilerplateThreshold is the rune length below which the leading paragraph
// of an entry is treated as a decorative lead-in and dropped.
const BoilerplateThreshold = 100

// SegmentDelimiters are the section labels that split entry text, matched
// case-insensitively. Text before the first label is the synopsis.
var SegmentDelimiters = []string{
	"Imágenes:",
	"Imagenes:",
	"Descarga Mega:",
	"Descarga Mediafire:",
	"Descarga OneDrive:",
}

// SpecificationSegment is the index of the delimiter split that
// conventionally holds the specification table: the text following
// "Imágenes:".
const SpecificationSegment = 2

// SpecificationFields are the known specification field names in match
// priority order. Longer names precede their prefixes.
var SpecificationFields = []string{
	"Nombre",
	"Genero",
	"Tipo",
	"Estudio",
	"Tamaño del Archivo",
	"Subtítulos",
	"Subtitulos",
	"Traducción Por",
	"Traducción",
	"Traduccion",
	"Agradecimientos",
	"Duración",
	"Duracion",
}

// TitleBlacklist holds title substrings of posts that are not visual novel
// releases: section hubs, news, polls and the like.
var TitleBlacklist = []string{
	"Kirikiroid",
	"Noticias",
	"Android",
	"Encuesta",
	"Navidad",
	"Aprende",
}

// AlternateLinkIndex is the position of the post's public URL in an entry's
// link list. Blogger emits link relations in a stable order: two replies
// links, edit, self, alternate.
const AlternateLinkIndex = 4

// Feed categories of the Android sections. Each section is a single post.
const (
	CategoryAndroidApk  = "Android Apk"
	CategoryKirikiroid2 = "Kirikiroid2"
)

// Visible link texts marking download links in the Android sections.
const (
	ApkLinkText       = "Apk"
	MediafireLinkText = "Mediafire"
)

// UploaderCredits are stripped from Kirikiroid2 titles.
var UploaderCredits = []string{
	"por AngelGbb",
	"por DaveVGN",
}

// ApkTitles lists the games of the Android apk section in page order. The
// page does not carry titles in extractable markup, so this list must be
// updated by hand whenever the section changes: new games go first. Check
// http://www.visualnovelparapc.com/2022/01/android-apk.html when an
// alignment error is reported.
var ApkTitles = []string{
	"Dorei to no Seikatsu -Teaching Feeling",
	"Sakura Swim Club",
	"Sakura Spirit",
	"Sakura Maid",
	"Sakura Halloween",
	"Sakura Christmas Party",
	"Sakura Valentine's Day",
	"My Neighbor is a Yandere!?",
	"Doki Doki Literature Club!",
	"Apricot Tei Monogatari",
	"Sono Hanabira - New Gen!",
	"Sono Hanabira 4",
	"Imouto Ijime",
	"Sunrider Academy",
	"Sakura Beach",
	"Sakura Fantasy",
	"Hidamari no Kioku(ntr)",
	"Sakura Shrine",
	"Butterfly Affection",
	"Sugar's Delight",
	"Sweetest Monster",
	"Aozora Meikyuu",
	"Sakura Magical Girls",
	"Wolf Tails",
	"Master of the Harem Guild",
	"The Demon's Stele & The Dog Princess",
	"Bullied Bride",
	"StayStay",
	"Wild Romance Mofu Mofu",
	"Imolicious",
	"Lost Life",
	"My Neighbor is a Yandere 2!?",
	"The Grim Reaper Who Reaped My Heart",
	"Lonely Yuri",
	"Love Love H Maid",
	"Otomaid @ Cafe(trap)",
	"Hansel y Gretel DS",
	"Kubitori Sarasa",
	"Cuidando la Casa con mi Hermanita",
	"Nai Training Diary[H]",
}
