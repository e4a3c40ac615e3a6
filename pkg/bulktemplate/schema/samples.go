package schema

// SampleRows returns the example records written under the Shipments
// headers as a usage illustration. Each record has one value per field,
// and constrained fields hold values from their bound categories.
func SampleRows() [][]string {
	return [][]string{
		{
			"testclient@flash.com", "John Doe", "+201234567890", "Electronics - Smartphone",
			"500", "123 Main St", "Apt 101", "Cairo", "Nasr City",
			"456 Oak Ave", "Building 5", "Alexandria", "Downtown", "COD",
			"520", "FALSE", "0.5", "15x10x5", "Sample shipment 1",
		},
		{
			"testclient@flash.com", "Jane Smith", "+201987654321", "Clothing - T-Shirt",
			"150", "123 Main St", "Apt 101", "Cairo", "Nasr City",
			"789 Pine St", "Floor 3", "Giza", "Dokki", "Transfer",
			"0", "FALSE", "0.3", "20x15x2", "Sample shipment 2",
		},
	}
}
