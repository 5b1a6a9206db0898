package patient

import "context"

// SampleRoster returns the demo patients used to seed a fresh deployment.
func SampleRoster() []Patient {
	return []Patient{
		{
			ID:         "P-2024-001",
			FirstName:  "John",
			LastName:   "Doe",
			Gender:     GenderMale,
			DOB:        "1992-05-15",
			Phone:      "+1 (555) 123-4567",
			NationalID: "123456789",
			Address:    "123 Main Street, New York, NY 10001",
			Notes:      "Patient has mild anemia. Recommended iron supplements.",
			LastVisit:  "2024-03-15",
		},
		{
			ID:         "P-2024-002",
			FirstName:  "Jane",
			LastName:   "Smith",
			Gender:     GenderFemale,
			DOB:        "1988-08-22",
			Phone:      "+1 (555) 987-6543",
			NationalID: "987654321",
			Address:    "456 Oak Avenue, Los Angeles, CA 90001",
			Notes:      "Annual check-up completed. All tests normal.",
			LastVisit:  "2024-03-10",
		},
		{
			ID:         "P-2024-003",
			FirstName:  "Robert",
			LastName:   "Johnson",
			Gender:     GenderMale,
			DOB:        "1975-12-10",
			Phone:      "+1 (555) 456-7890",
			NationalID: "456789123",
			Address:    "789 Pine Road, Chicago, IL 60601",
			Notes:      "Diabetes monitoring. Next appointment in 3 months.",
			LastVisit:  "2024-03-05",
		},
		{
			ID:         "P-2024-004",
			FirstName:  "Sarah",
			LastName:   "Williams",
			Gender:     GenderFemale,
			DOB:        "1995-03-28",
			Phone:      "+1 (555) 789-0123",
			NationalID: "789123456",
			Address:    "321 Maple Lane, Houston, TX 77001",
			Notes:      "Pregnant - first trimester. Regular monitoring needed.",
			LastVisit:  "2024-02-28",
		},
		{
			ID:         "P-2024-005",
			FirstName:  "Michael",
			LastName:   "Brown",
			Gender:     GenderMale,
			DOB:        "1980-11-03",
			Phone:      "+1 (555) 234-5678",
			NationalID: "234567891",
			Address:    "654 Cedar Street, Phoenix, AZ 85001",
			Notes:      "High cholesterol. On medication.",
			LastVisit:  "2024-02-25",
		},
	}
}

// Seed upserts the sample roster; re-running replaces the same records
// instead of duplicating them.
func (s *Service) Seed(ctx context.Context) (int, error) {
	roster := SampleRoster()
	for i := range roster {
		if err := s.repo.Upsert(ctx, &roster[i]); err != nil {
			return i, err
		}
	}
	return len(roster), nil
}
