package i18n

// tables holds the static translation tables, keyed by language code.
var tables = map[string]map[string]string{
	"en": {
		"welcome":            "Welcome",
		"login":              "Login",
		"register":           "Register",
		"username":           "Username",
		"password":           "Password",
		"firstName":          "First Name",
		"lastName":           "Last Name",
		"email":              "Email",
		"confirmPassword":    "Confirm Password",
		"dashboard":          "Dashboard",
		"addReferral":        "Add Referral",
		"history":            "History",
		"settings":           "Settings",
		"signOut":            "Sign Out",
		"customerName":       "Customer Name",
		"customerEmail":      "Customer Email",
		"customerPhone":      "Customer Phone",
		"vehicleType":        "Vehicle Type",
		"budget":             "Budget Range",
		"notes":              "Notes",
		"submit":             "Submit",
		"totalReferrals":     "Total Referrals",
		"totalEarnings":      "Total Earnings",
		"pendingReferrals":   "Pending",
		"completedReferrals": "Completed",
		"currentTier":        "Current Tier",
		"commission":         "Commission",
		"status":             "Status",
		"date":               "Date",
		"invalidCredentials": "Invalid username or password",
		"networkError":       "Network error. Please try again.",
		"updateFailed":       "Failed to update referral status",
		"sedan":              "Sedan",
		"suv":                "SUV",
		"truck":              "Truck",
		"coupe":              "Coupe",
		"convertible":        "Convertible",
		"hatchback":          "Hatchback",
		"pending":            "Pending",
		"approved":           "Approved",
		"completed":          "Completed",
		"rejected":           "Rejected",
	},
	"es": {
		"welcome":            "Bienvenido",
		"login":              "Iniciar Sesión",
		"register":           "Registrarse",
		"username":           "Usuario",
		"password":           "Contraseña",
		"firstName":          "Nombre",
		"lastName":           "Apellido",
		"email":              "Correo",
		"confirmPassword":    "Confirmar Contraseña",
		"dashboard":          "Panel",
		"addReferral":        "Agregar Referido",
		"history":            "Historial",
		"settings":           "Configuración",
		"signOut":            "Cerrar Sesión",
		"customerName":       "Nombre del Cliente",
		"customerEmail":      "Correo del Cliente",
		"customerPhone":      "Teléfono del Cliente",
		"vehicleType":        "Tipo de Vehículo",
		"budget":             "Rango de Presupuesto",
		"notes":              "Notas",
		"submit":             "Enviar",
		"totalReferrals":     "Total de Referidos",
		"totalEarnings":      "Ganancias Totales",
		"pendingReferrals":   "Pendientes",
		"completedReferrals": "Completados",
		"currentTier":        "Nivel Actual",
		"commission":         "Comisión",
		"status":             "Estado",
		"date":               "Fecha",
		"invalidCredentials": "Usuario o contraseña inválidos",
		"networkError":       "Error de red. Inténtalo de nuevo.",
		"updateFailed":       "No se pudo actualizar el estado del referido",
		"sedan":              "Sedán",
		"suv":                "SUV",
		"truck":              "Camioneta",
		"coupe":              "Cupé",
		"convertible":        "Convertible",
		"hatchback":          "Hatchback",
		"pending":            "Pendiente",
		"approved":           "Aprobado",
		"completed":          "Completado",
		"rejected":           "Rechazado",
	},
	"fr": {
		"welcome":            "Bienvenue",
		"login":              "Connexion",
		"register":           "S'inscrire",
		"username":           "Nom d'utilisateur",
		"password":           "Mot de passe",
		"firstName":          "Prénom",
		"lastName":           "Nom",
		"email":              "Email",
		"confirmPassword":    "Confirmer le mot de passe",
		"dashboard":          "Tableau de bord",
		"addReferral":        "Ajouter une référence",
		"history":            "Historique",
		"settings":           "Paramètres",
		"signOut":            "Se déconnecter",
		"customerName":       "Nom du client",
		"customerEmail":      "Email du client",
		"customerPhone":      "Téléphone du client",
		"vehicleType":        "Type de véhicule",
		"budget":             "Gamme de budget",
		"notes":              "Notes",
		"submit":             "Soumettre",
		"totalReferrals":     "Total des références",
		"totalEarnings":      "Gains totaux",
		"pendingReferrals":   "En attente",
		"completedReferrals": "Terminées",
		"currentTier":        "Niveau actuel",
		"commission":         "Commission",
		"status":             "Statut",
		"date":               "Date",
		"invalidCredentials": "Nom d'utilisateur ou mot de passe invalide",
		"networkError":       "Erreur réseau. Veuillez réessayer.",
		"updateFailed":       "Échec de la mise à jour du statut",
		"sedan":              "Berline",
		"suv":                "SUV",
		"truck":              "Camion",
		"coupe":              "Coupé",
		"convertible":        "Cabriolet",
		"hatchback":          "Hayon",
		"pending":            "En attente",
		"approved":           "Approuvé",
		"completed":          "Terminé",
		"rejected":           "Rejeté",
	},
	"ht": {
		"welcome":            "Byenvini",
		"login":              "Konekte",
		"register":           "Enskri",
		"username":           "Non itilizatè",
		"password":           "Modpas",
		"firstName":          "Premye Non",
		"lastName":           "Dezyèm Non",
		"email":              "Imèl",
		"confirmPassword":    "Konfime Modpas",
		"dashboard":          "Tablo Kòmand",
		"addReferral":        "Ajoute Referans",
		"history":            "Istwa",
		"settings":           "Paramèt",
		"signOut":            "Dekonekte",
		"customerName":       "Non Kliyèn",
		"customerEmail":      "Imèl Kliyèn",
		"customerPhone":      "Telefòn Kliyèn",
		"vehicleType":        "Kalite Machin",
		"budget":             "Bidjè",
		"notes":              "Nòt",
		"submit":             "Voye",
		"totalReferrals":     "Total Referans",
		"totalEarnings":      "Total Benefis",
		"pendingReferrals":   "K ap tann",
		"completedReferrals": "Fini",
		"currentTier":        "Nivo Kounye a",
		"commission":         "Komisyon",
		"status":             "Eta",
		"date":               "Dat",
		"invalidCredentials": "Non itilizatè oswa modpas ki pa bon",
		"networkError":       "Pwoblèm rezo. Tanpri eseye ankò.",
		"updateFailed":       "Nou pa t ka chanje eta referans lan",
		"sedan":              "Sedan",
		"suv":                "SUV",
		"truck":              "Kamyon",
		"coupe":              "Coupe",
		"convertible":        "Convertible",
		"hatchback":          "Hatchback",
		"pending":            "K ap tann",
		"approved":           "Apwouve",
		"completed":          "Fini",
		"rejected":           "Rejte",
	},
}
