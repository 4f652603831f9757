package constants

// AssemblyURLs maps the supported human genome assembly labels to the
// Ensembl REST server that carries annotation for that assembly.
var AssemblyURLs = map[string]string{
	"GRCh38": "https://rest.ensembl.org",
	"GRCh37": "https://grch37.rest.ensembl.org",
}

// Assemblies returns the supported assembly labels in a stable order.
func Assemblies() []string {
	return []string{"GRCh37", "GRCh38"}
}
