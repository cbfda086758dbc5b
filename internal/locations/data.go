package locations

// places is the static location table. Read-only after init.
var places = []Place{
	{City: "Visakhapatnam", State: "Andhra Pradesh"},
	{City: "Vijayawada", State: "Andhra Pradesh"},
	{City: "Tirupati", State: "Andhra Pradesh"},
	{City: "Itanagar", State: "Arunachal Pradesh"},
	{City: "Guwahati", State: "Assam"},
	{City: "Patna", State: "Bihar"},
	{City: "Gaya", State: "Bihar"},
	{City: "Raipur", State: "Chhattisgarh"},
	{City: "New Delhi", State: "Delhi"},
	{City: "Panaji", State: "Goa"},
	{City: "Margao", State: "Goa"},
	{City: "Ahmedabad", State: "Gujarat"},
	{City: "Surat", State: "Gujarat"},
	{City: "Vadodara", State: "Gujarat"},
	{City: "Gurugram", State: "Haryana"},
	{City: "Shimla", State: "Himachal Pradesh"},
	{City: "Manali", State: "Himachal Pradesh"},
	{City: "Srinagar", State: "Jammu and Kashmir"},
	{City: "Ranchi", State: "Jharkhand"},
	{City: "Bengaluru", State: "Karnataka"},
	{City: "Mysuru", State: "Karnataka"},
	{City: "Mangaluru", State: "Karnataka"},
	{City: "Kochi", State: "Kerala"},
	{City: "Thiruvananthapuram", State: "Kerala"},
	{City: "Kozhikode", State: "Kerala"},
	{City: "Munnar", State: "Kerala"},
	{City: "Alappuzha", State: "Kerala"},
	{City: "Leh", State: "Ladakh"},
	{City: "Bhopal", State: "Madhya Pradesh"},
	{City: "Indore", State: "Madhya Pradesh"},
	{City: "Mumbai", State: "Maharashtra"},
	{City: "Pune", State: "Maharashtra"},
	{City: "Nagpur", State: "Maharashtra"},
	{City: "Imphal", State: "Manipur"},
	{City: "Shillong", State: "Meghalaya"},
	{City: "Aizawl", State: "Mizoram"},
	{City: "Kohima", State: "Nagaland"},
	{City: "Bhubaneswar", State: "Odisha"},
	{City: "Puri", State: "Odisha"},
	{City: "Puducherry", State: "Puducherry"},
	{City: "Amritsar", State: "Punjab"},
	{City: "Ludhiana", State: "Punjab"},
	{City: "Jaipur", State: "Rajasthan"},
	{City: "Udaipur", State: "Rajasthan"},
	{City: "Jodhpur", State: "Rajasthan"},
	{City: "Gangtok", State: "Sikkim"},
	{City: "Chennai", State: "Tamil Nadu"},
	{City: "Coimbatore", State: "Tamil Nadu"},
	{City: "Madurai", State: "Tamil Nadu"},
	{City: "Ooty", State: "Tamil Nadu"},
	{City: "Hyderabad", State: "Telangana"},
	{City: "Warangal", State: "Telangana"},
	{City: "Agartala", State: "Tripura"},
	{City: "Lucknow", State: "Uttar Pradesh"},
	{City: "Agra", State: "Uttar Pradesh"},
	{City: "Varanasi", State: "Uttar Pradesh"},
	{City: "Dehradun", State: "Uttarakhand"},
	{City: "Rishikesh", State: "Uttarakhand"},
	{City: "Kolkata", State: "West Bengal"},
	{City: "Darjeeling", State: "West Bengal"},
}
